/*
 * doc.go, part of goseis
 *
 * Copyright (c) 2024 The goSeis developers <goseis_dot_dev_at_tuta_dot_io>
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
 */

/*
Par is a package for reading/editing/writing the simulator's Par_file, the
ordered "KEY = value" text file that controls a run. Values keep the file's
Fortran spellings (.true./.false. booleans, 'd' exponents on doubles) on disk
while carrying a proper Go type in memory, and the parameter order of the
file survives a read/write round trip.
*/
package par
