// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

// See doc.go for documentation
import (
	"context"
	"fmt"
	"io"
	stdlog "log"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio-regionstat/encoding/track"
	"github.com/grailbio/bio-regionstat/regionstat"
	"v.io/x/lib/cmdline"
)

type opts struct {
	path1, path2 string
	// reportPath, if nonempty, receives a TSV summary of the run.
	reportPath string
}

// validatePath checks that path exists and has a track suffix.
func validatePath(ctx context.Context, flagName, path string) error {
	if path == "" {
		return fmt.Errorf("-%s is required", flagName)
	}
	if _, err := file.Stat(ctx, path); err != nil {
		return fmt.Errorf("the file %s does not exist: %v", path, err)
	}
	if track.DetermineFormat(path) == track.Unknown {
		return fmt.Errorf("the file %s is not accepted; it must be in SEGMENT format (%s) or FUNCTION format (%s)",
			path, track.SegmentSuffix, track.FunctionSuffix)
	}
	return nil
}

func writeReport(ctx context.Context, path string, o opts, result regionstat.Result) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return regionstat.WriteReport(out.Writer(ctx), o.path1, o.path2, result)
}

func run(ctx context.Context, stdout io.Writer, o opts) error {
	if err := validatePath(ctx, "f1", o.path1); err != nil {
		return err
	}
	if err := validatePath(ctx, "f2", o.path2); err != nil {
		return err
	}
	result, err := regionstat.Run(ctx, o.path1, o.path2)
	if err != nil {
		return err
	}
	log.Debug.Printf("%v(%s, %s) = %v", result.Mode, o.path1, o.path2, result)
	if o.reportPath != "" {
		if err := writeReport(ctx, o.reportPath, o, result); err != nil {
			return fmt.Errorf("writing report %s: %v", o.reportPath, err)
		}
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

func newCmdRoot() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "bio-regionstat",
		Short:    "Correlate, intersect or average two SEGMENT/FUNCTION track files",
		LookPath: false,
	}
	var o opts
	cmd.Flags.StringVar(&o.path1, "f1", "", "Input file, in SEGMENT (.s) or FUNCTION (.f) format")
	cmd.Flags.StringVar(&o.path2, "f2", "", "Input file, in SEGMENT (.s) or FUNCTION (.f) format")
	cmd.Flags.StringVar(&o.reportPath, "report", "", "If set, also write a TSV summary of the result to this path")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("bio-regionstat takes no positional arguments, but got %v", argv)
		}
		return run(vcontext.Background(), env.Stdout, o)
	})
	return cmd
}

func main() {
	stdlog.SetFlags(stdlog.Ldate | stdlog.Ltime | stdlog.Lmicroseconds | stdlog.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
