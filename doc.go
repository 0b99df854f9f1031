/*
 * doc.go, part of goseis
 *
 *
 * Copyright (c) 2024 The goSeis developers <goseis_dot_dev_at_tuta_dot_io>
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

/*Package seis is the main package of the goSeis library. It provides typed,
structured access to the text files that configure spectral-element
seismic wave propagation simulators, plus a few analysis helpers for the
data in them.


	**goSeis Capabilities**


    Reads/writes CMTSOLUTION earthquake source files (Harvard CMT
	convention), keeping the catalog hypocenter line verbatim and the
	moment tensor in its canonical rr, tt, pp, rt, rp, tp order.

    Reads/writes STATIONS receiver lists, both as per-station rows and
	as the column slices that network-wide codes want.

    Reads/writes the simulator Par_file (in the par subpackage),
	preserving parameter order and the Fortran spellings of booleans
	and double-precision exponents, while giving each value a proper
	Go type.

    All file reading and writing handles zstd, gzip, flate and lzw
	compressed files transparently, keyed on the file extension.

    Computes scalar moment, moment magnitude and principal axes from
	moment tensors, and exports them as Gonum matrices for further
	numeric work.

    Computes epicentral distances for whole receiver networks.

    Draws receiver maps with the epicenter marked (in the seisplot
	subpackage, using the Gonum plot library).

    Events and receivers can be JSON encoded for exchange with
	earthquake catalog feeds and non-Go tooling.


Errors from every package in the library implement the Error interface of
this package, and the ones tied to a file also implement FileError, which
tells the failure class, the file and the line involved.*/
package seis
