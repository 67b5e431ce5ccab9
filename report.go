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
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/n64loader/n64loader/database"
	"github.com/n64loader/n64loader/heuristic"
	"github.com/n64loader/n64loader/ingest"
	"github.com/n64loader/n64loader/profile"
	"github.com/n64loader/n64loader/rom"
)

type profileReport struct {
	System        string `yaml:"system"`
	CIC           string `yaml:"cic"`
	Memory        string `yaml:"memory"`
	ControllerPak bool   `yaml:"cpak"`
	RumblePak     bool   `yaml:"rpak"`
	TransferPak   bool   `yaml:"tpak"`
	RTC           bool   `yaml:"rtc"`
}

func newProfileReport(p profile.Profile) profileReport {
	return profileReport{
		System:        p.System.String(),
		CIC:           p.CIC.String(),
		Memory:        p.Memory.String(),
		ControllerPak: p.Peripherals.ControllerPak,
		RumblePak:     p.Peripherals.RumblePak,
		TransferPak:   p.Peripherals.TransferPak,
		RTC:           p.Peripherals.RTC,
	}
}

type recordReport struct {
	Source string   `yaml:"source"`
	Line   int      `yaml:"line"`
	Tags   []string `yaml:"tags"`
}

func newRecordReport(rec database.Record) *recordReport {
	return &recordReport{
		Source: rec.Source,
		Line:   rec.Line,
		Tags:   rec.Tags,
	}
}

type headerReport struct {
	Title    string `yaml:"title"`
	CartID   string `yaml:"cartid"`
	Region   string `yaml:"region"`
	Revision int    `yaml:"revision"`
	Checksum string `yaml:"checksum"`
}

func newHeaderReport(h rom.Header) *headerReport {
	return &headerReport{
		Title:    h.Title,
		CartID:   h.ID(),
		Region:   string(h.Region),
		Revision: int(h.Revision),
		Checksum: fmt.Sprintf("%016x", h.Checksum),
	}
}

// report is the serialisable form of an ingest.Result.
type report struct {
	Name         string        `yaml:"name"`
	Bytes        int64         `yaml:"bytes"`
	Format       string        `yaml:"format"`
	HeaderDigest string        `yaml:"header_md5"`
	FileDigest   string        `yaml:"file_md5"`
	Fingerprint  string        `yaml:"fingerprint"`
	Method       string        `yaml:"method"`
	Record       *recordReport `yaml:"record,omitempty"`
	Header       *headerReport `yaml:"header,omitempty"`
	Outcome      string        `yaml:"outcome,omitempty"`
	Profile      profileReport `yaml:"profile"`
	Applied      bool          `yaml:"applied"`
	SavePath     string        `yaml:"savepath"`
}

func newReport(res ingest.Result) report {
	r := report{
		Name:         res.Name,
		Bytes:        res.Bytes,
		Format:       res.Format.String(),
		HeaderDigest: res.HeaderDigest.String(),
		FileDigest:   res.FileDigest.String(),
		Fingerprint:  res.Fingerprint,
		Method:       res.Method.String(),
		Profile:      newProfileReport(res.Profile),
		Applied:      res.Applied,
		SavePath:     res.SavePath,
	}

	switch res.Method {
	case ingest.MethodHeaderDigest, ingest.MethodFileDigest:
		r.Record = newRecordReport(res.Record)
	case ingest.MethodHeuristic:
		r.Outcome = res.Outcome.String()
	}

	if res.Header != nil {
		r.Header = newHeaderReport(*res.Header)
	}

	return r
}

func writeYAML(output io.Writer, v any) error {
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(output io.Writer, res ingest.Result) {
	fmt.Fprintf(output, "%s: %d bytes (%s)\n", res.Name, res.Bytes, res.Format)
	fmt.Fprintf(output, "  header md5: %s\n", res.HeaderDigest)
	fmt.Fprintf(output, "  file md5:   %s\n", res.FileDigest)

	switch res.Method {
	case ingest.MethodHeaderDigest, ingest.MethodFileDigest:
		fmt.Fprintf(output, "  resolved by %s (%s line %d: %s)\n", res.Method,
			res.Record.Source, res.Record.Line, strings.Join(res.Record.Tags, "|"))
	case ingest.MethodHeuristic:
		fmt.Fprintf(output, "  resolved by %s: %s\n", res.Method, res.Outcome)
	}

	if res.Method != ingest.MethodHeuristic || res.Outcome != heuristic.UnknownCIC {
		fmt.Fprintf(output, "  %s\n", res.Profile)
	}

	if !res.Applied {
		fmt.Fprintln(output, "  profile not applied")
	}
}
