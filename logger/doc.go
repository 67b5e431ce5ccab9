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

// Package logger is the central log for the loader. Log entries are tagged
// with the component that raised them, for example "database" or "ingest".
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count. Only the most recent entries are kept.
//
// Logging can be conditional on a Permission. Components that should not log
// in some contexts (the HEADER mode for example never wants to see the
// database diagnostics) can be given a Permission that returns false.
// logger.Allow always permits logging.
package logger
