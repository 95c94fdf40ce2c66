/*
 * doc.go, part of gotraj
 *
 * Copyright 2024 Raul Mera A. <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package lammps implements reading and writing of the LAMMPS "atom dump"
text trajectory format. Unlike most trajectory formats, a dump file
declares its per-atom columns independently on every step, so the reader
discovers the schema per step, resolves the best available position
representation (unwrapped, scaled unwrapped, wrapped with or without image
flags, or scaled) and converts everything to cartesian coordinates. The
triclinic bounding-box padding LAMMPS stores is removed on reading and
restored on writing. Random access to steps is provided through a lazily
built index of step offsets.*/
package lammps
