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

package database_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/n64loader/n64loader/database"
	"github.com/n64loader/n64loader/logger"
	"github.com/n64loader/n64loader/profile"
	"github.com/n64loader/n64loader/test"
)

const hashA = "0123456789abcdef0123456789abcdef"
const hashB = "fedcba9876543210fedcba9876543210"
const hashC = "00000000000000000000000000000000"

const builtin = `# comment line
0123456789abcdef0123456789abcdef sram32k|rpak|cic6105|pal
fedcba9876543210fedcba9876543210 eeprom512|cpak
`

const user = `0123456789abcdef0123456789abcdef flash128k|tpak
00000000000000000000000000000000 rtc|CIC8401|Flash128K
`

func TestResolve(t *testing.T) {
	db := database.New(database.TextSource("builtin", builtin))

	p, ok := db.Resolve(hashA)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.Memory, profile.MemorySRAM32k)
	test.ExpectEquality(t, p.CIC, profile.CIC6105)
	test.ExpectEquality(t, p.System, profile.PAL)
	test.ExpectEquality(t, p.Peripherals, profile.Peripherals{RumblePak: true})

	// fields not mentioned in the record have default values
	p, ok = db.Resolve(hashB)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.Memory, profile.MemoryEEPROM512)
	test.ExpectEquality(t, p.CIC, profile.CIC6102)
	test.ExpectEquality(t, p.System, profile.NTSC)
	test.ExpectEquality(t, p.Peripherals, profile.Peripherals{ControllerPak: true})

	_, ok = db.Resolve(hashC)
	test.ExpectFailure(t, ok)
}

func TestPrecedence(t *testing.T) {
	db := database.New(
		database.TextSource("builtin", builtin),
		database.TextSource("user", user),
	)

	// the builtin source is searched first
	rec, ok := db.Lookup(hashA)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Source, "builtin")
	test.ExpectEquality(t, rec.Line, 2)
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemorySRAM32k)

	// entries only in the user source are found
	rec, ok = db.Lookup(hashC)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Source, "user")
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemoryFlash128k)
	test.ExpectEquality(t, rec.Profile.CIC, profile.CIC8401)
	test.ExpectEquality(t, rec.Profile.Peripherals, profile.Peripherals{RTC: true})

	// reversing the order of the sources reverses the precedence
	db = database.New(
		database.TextSource("user", user),
		database.TextSource("builtin", builtin),
	)
	rec, ok = db.Lookup(hashA)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Source, "user")
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemoryFlash128k)
}

func TestFirstLineWins(t *testing.T) {
	db := database.New(database.TextSource("dup", hashA+" eeprom2k\n"+hashA+" sram96k\n"))
	p, ok := db.Resolve(hashA)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, p.Memory, profile.MemoryEEPROM2k)
}

func TestLongLine(t *testing.T) {
	// a line longer than a default bufio.Scanner token does not end the search
	long := "# " + strings.Repeat("x", 256*1024) + "\n"
	db := database.New(database.TextSource("long", long+hashB+" eeprom2k\r\n"+hashA+" sram96k"))

	rec, ok := db.Lookup(hashB)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Line, 2)
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemoryEEPROM2k)

	// final line without a newline
	rec, ok = db.Lookup(hashA)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Line, 3)
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemorySRAM96k)
}

func TestNoTags(t *testing.T) {
	// a matching line with no tags is skipped
	db := database.New(database.TextSource("notags", hashA+"\n"+hashA+" sram96k\n"))
	rec, ok := db.Lookup(hashA)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Line, 2)
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemorySRAM96k)
}

func TestTags(t *testing.T) {
	w := &strings.Builder{}
	logger.SetEcho(w, false)
	defer logger.SetEcho(nil, false)

	db := database.New(database.TextSource("tags", hashA+" RPAK|bogus|eeprom512|eeprom2k|pal|ntsc|cicDDUS||TPAK\n"))
	rec, ok := db.Lookup(hashA)
	test.DemandSuccess(t, ok)

	// later tags of the same category override earlier ones
	test.ExpectEquality(t, rec.Profile.Memory, profile.MemoryEEPROM2k)
	test.ExpectEquality(t, rec.Profile.System, profile.NTSC)
	test.ExpectEquality(t, rec.Profile.CIC, profile.CICDDUS)
	test.ExpectEquality(t, rec.Profile.Peripherals, profile.Peripherals{RumblePak: true, TransferPak: true})
	test.ExpectEquality(t, len(rec.Tags), 9)

	// the unknown tag was logged
	test.ExpectSuccess(t, strings.Contains(w.String(), "database: unknown tag: bogus"))
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "N64-database.txt")
	test.DemandSuccess(t, os.WriteFile(path, []byte(builtin), 0644))

	db := database.New(
		database.FileSource(filepath.Join(dir, "missing.txt")),
		database.FileSource(path),
	)

	// the missing file is treated as empty
	rec, ok := db.Lookup(hashB)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, rec.Source, path)
}

func TestInvalidKey(t *testing.T) {
	db := database.New(database.TextSource("builtin", builtin))
	_, ok := db.Resolve("0123456789abcdef")
	test.ExpectFailure(t, ok)

	// hashes are compared exactly
	_, ok = db.Resolve(strings.ToUpper(hashB))
	test.ExpectFailure(t, ok)
}
