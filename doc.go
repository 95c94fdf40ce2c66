/*
 * doc.go, part of gotraj.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goTraj is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package traj is the main package of the goTraj library. It provides the value
types shared by the trajectory-format packages (Frame, Atom, UnitCell and
frame-level properties) together with the interfaces every format reader in
the library implements.


	**goTraj capabilities**

    Reads LAMMPS "atom dump" trajectory files, from disk or from memory,
	sequentially or by random access to any step, including gzip, zstd
	and bzip2 compressed files.

    Resolves the best available position representation per step
	(unwrapped, scaled-unwrapped, wrapped plus image flags, or scaled
	coordinates) into absolute cartesian coordinates.

    Recovers the full unit cell (orthorhombic or triclinic, with lengths,
	angles and basis vectors) from the compact bounds-plus-tilt encoding
	used by the dump format.

    Writes frames back in the same dump grammar, appending one frame at
	a time.

    Computes mean squared displacements, diffusion coefficients and
	cell-volume series over a trajectory, and plots them to PNG files.

Each on-disk format lives in its own sub-package (currently, lammps).
Format packages return *traj.Frame values and implement the traj.Traj
interface, so analysis code does not depend on the format it reads from.
*/
package traj
