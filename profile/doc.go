// This file is part of n64loader.
//
// n64loader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64loader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64loader.  If not, see <https://www.gnu.org/licenses/>.

// Package profile describes the configuration needed to run an N64 title:
// video timing, CIC variant, save memory type and attached peripherals.
//
// A Profile is applied to a Store. The Store is the only way resolved
// information leaves the loader and is deliberately narrow: it can report
// whether automatic detection is enabled and it can set individual fields.
package profile
