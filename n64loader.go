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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bradleyjkemp/memviz"
	perf "github.com/pkg/profile"

	"github.com/n64loader/n64loader/cartridgeloader"
	"github.com/n64loader/n64loader/curated"
	"github.com/n64loader/n64loader/database"
	"github.com/n64loader/n64loader/heuristic"
	"github.com/n64loader/n64loader/ingest"
	"github.com/n64loader/n64loader/logger"
	"github.com/n64loader/n64loader/modalflag"
	"github.com/n64loader/n64loader/paths"
	"github.com/n64loader/n64loader/prefs"
	"github.com/n64loader/n64loader/progress"
	"github.com/n64loader/n64loader/rom"
	"github.com/n64loader/n64loader/sink"
	"github.com/n64loader/n64loader/statsview"
	"github.com/n64loader/n64loader/status"
	"github.com/n64loader/n64loader/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch the program with the arguments. returns the value to use with
// os.Exit()
func launch(args []string, output io.Writer, errOutput io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("LOAD", "LOOKUP", "HEADER", "STATUS")
	prefsOverride := md.AddString("prefs", "", "override preferences for this run (key::value; key::value)")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	prefs.PushCommandLineStack(*prefsOverride)
	defer prefs.PopCommandLineStack()

	pref, err := newPreferences()
	if err != nil {
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "LOAD":
		err = load(md, pref, output, errOutput)

	case "LOOKUP":
		err = lookup(md, pref, output)

	case "HEADER":
		err = header(md, output)

	case "STATUS":
		err = showStatus(md, pref, output)
	}

	if err != nil {
		fmt.Fprintf(errOutput, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func openDatabase(dbPath string, userPath string) *database.DB {
	return database.New(database.FileSource(dbPath), database.FileSource(userPath))
}

func load(md *modalflag.Modes, pref *Preferences, output io.Writer, errOutput io.Writer) error {
	md.NewMode()

	index := md.AddUint8("index", uint8(pref.Index.Get().(int)), "sink index of the image")
	out := md.AddString("out", "", "write normalised image to file (.zst and .lz4 extensions compress)")
	order := md.AddString("order", "z64", "byte order of the --out file (z64, v64 or n64)")
	ws := md.AddString("ws", "", "send normalised image to websocket server")
	autodetect := md.AddBool("autodetect", pref.AutoDetect.Get().(bool), "apply the resolved profile to the status")
	dbPath := md.AddString("db", pref.Database.String(), "database file")
	userPath := md.AddString("userdb", pref.UserDatabase.String(), "user database file. searched after the database")
	log := md.AddBool("log", false, "echo log to stderr")
	asYAML := md.AddBool("yaml", false, "print result as YAML")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	cpuProfile := md.AddString("profile", "", "write CPU profile to directory")
	mv := md.AddBool("memviz", false, "write memviz graph of the result")
	save := md.AddBool("save", false, "save preferences")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(errOutput, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output, "")
	}

	if *cpuProfile != "" {
		defer perf.Start(perf.CPUProfile, perf.ProfilePath(*cpuProfile), perf.Quiet).Stop()
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("N64 image required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *out != "" && *ws != "" {
		return curated.Errorf("--out and --ws cannot be used together")
	}

	outOrder, err := rom.ParseFormat(*order)
	if err != nil {
		return err
	}

	var snk sink.Sink = sink.Discard{}
	if *out != "" {
		f := sink.NewFile(*out)
		f.Order = outOrder
		snk = f
	} else if *ws != "" {
		w, err := sink.NewWebSocket(*ws)
		if err != nil {
			return err
		}
		defer w.Close()
		snk = w
	}

	st := status.NewStatus()
	if err := st.Load(pref.Status.String()); err != nil {
		return err
	}
	st.SetAutoDetect(*autodetect)

	bar := progress.NewBarWriter(errOutput)

	pl := ingest.New(ingest.Config{
		Database: openDatabase(*dbPath, *userPath),
		Store:    st,
		Sink:     snk,
		Progress: bar,
		Notify:   bar,
		Index:    *index,
	})

	src, err := cartridgeloader.NewLoader(md.GetArg(0)).Open()
	if err != nil {
		return err
	}

	res, err := pl.Ingest(src)
	if err != nil {
		return err
	}

	if err := st.Save(pref.Status.String()); err != nil {
		return err
	}

	if *save {
		_ = pref.Index.Set(int(*index))
		_ = pref.AutoDetect.Set(*autodetect)
		_ = pref.Database.Set(*dbPath)
		_ = pref.UserDatabase.Set(*userPath)
		if err := pref.Save(); err != nil {
			return err
		}
	}

	if *mv {
		pth, err := paths.ResourcePath("memviz", paths.UniqueFilename("memviz", res.Name)+".dot")
		if err != nil {
			return err
		}
		f, err := os.Create(pth)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, &res)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		fmt.Fprintf(output, "memviz graph written to %s\n", pth)
	}

	if *asYAML {
		return writeYAML(output, newReport(res))
	}

	writeText(output, res)

	return nil
}

func lookup(md *modalflag.Modes, pref *Preferences, output io.Writer) error {
	md.NewMode()

	dbPath := md.AddString("db", pref.Database.String(), "database file")
	userPath := md.AddString("userdb", pref.UserDatabase.String(), "user database file. searched after the database")
	asYAML := md.AddBool("yaml", false, "print result as YAML")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("exactly one MD5 digest required for %s mode", md)
	}

	rec, ok := openDatabase(*dbPath, *userPath).Lookup(md.GetArg(0))
	if !ok {
		return curated.Errorf("no record for %s", md.GetArg(0))
	}

	if *asYAML {
		return writeYAML(output, struct {
			Record  *recordReport `yaml:"record"`
			Profile profileReport `yaml:"profile"`
		}{
			Record:  newRecordReport(rec),
			Profile: newProfileReport(rec.Profile),
		})
	}

	fmt.Fprintf(output, "%s line %d\n", filepath.Base(rec.Source), rec.Line)
	fmt.Fprintf(output, "  %s\n", rec.Profile)

	return nil
}

func header(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	asYAML := md.AddBool("yaml", false, "print result as YAML")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("N64 image required for %s mode", md)
	}

	src, err := cartridgeloader.NewLoader(md.GetArg(0)).Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if src.Size < rom.HeaderSize {
		return curated.Errorf(ingest.ShortROM, rom.HeaderSize, src.Size)
	}

	data := make([]byte, rom.HeaderSize)
	if _, err := io.ReadFull(src, data); err != nil {
		return curated.Errorf("header: %v", err)
	}

	f := rom.DetectFormat(data)
	rom.Normalise(data, f)

	h, err := rom.ParseHeader(data)
	if err != nil {
		return err
	}

	hr := heuristic.Resolve(h)

	if *asYAML {
		return writeYAML(output, struct {
			Format  string        `yaml:"format"`
			Header  *headerReport `yaml:"header"`
			Outcome string        `yaml:"outcome"`
			Profile profileReport `yaml:"profile"`
		}{
			Format:  f.String(),
			Header:  newHeaderReport(h),
			Outcome: hr.Outcome.String(),
			Profile: newProfileReport(hr.Profile),
		})
	}

	fmt.Fprintf(output, "%s (%s)\n", h, f)
	fmt.Fprintf(output, "  %s\n", hr.Outcome)
	if hr.Outcome != heuristic.UnknownCIC {
		fmt.Fprintf(output, "  %s\n", hr.Profile)
	}

	return nil
}

func showStatus(md *modalflag.Modes, pref *Preferences, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	st := status.NewStatus()
	if err := st.Load(pref.Status.String()); err != nil {
		return err
	}

	fmt.Fprintf(output, "registers: %s\n", st)
	fmt.Fprintf(output, "autodetect: %v\n", st.AutoDetect())
	fmt.Fprintf(output, "%s\n", st.Profile())

	return nil
}
