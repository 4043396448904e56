package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/itsatony/go-liquid"
)

// versionConfig holds parsed version command configuration
type versionConfig struct {
	format string
}

// versionInfo describes the binary and the engine it was built with
type versionInfo struct {
	Version   string   `json:"version"`
	Revision  string   `json:"revision"`
	Modified  bool     `json:"modified"`
	BuildTime string   `json:"build_time"`
	GoVersion string   `json:"go_version"`
	Tags      []string `json:"tags"`
	Filters   []string `json:"filters"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := newVersionInfo(debug.ReadBuildInfo())

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(info, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	revision := info.Revision
	if info.Modified {
		revision += VersionModifiedSuffix
	}
	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Version, revision, info.BuildTime, info.GoVersion,
		strings.Join(info.Tags, VersionListSep), len(info.Filters))
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

// newVersionInfo fills version and VCS details from the embedded build
// metadata and lists the tags and filters a fresh template starts with.
func newVersionInfo(bi *debug.BuildInfo, ok bool) *versionInfo {
	info := &versionInfo{
		Version:   VersionUnknown,
		Revision:  VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
		Tags:      liquid.StandardTagRegistry(nil).Names(),
	}
	for name := range liquid.StandardFilters() {
		info.Filters = append(info.Filters, name)
	}
	sort.Strings(info.Filters)

	if !ok || bi == nil {
		return info
	}
	if v := bi.Main.Version; v != "" && v != VersionDevel {
		info.Version = v
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case BuildSettingRevision:
			info.Revision = s.Value
		case BuildSettingTime:
			info.BuildTime = s.Value
		case BuildSettingModified:
			info.Modified = s.Value == "true"
		}
	}
	return info
}
