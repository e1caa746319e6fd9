package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/types"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func main() {
	bootROM := flag.String("boot", "", "The boot rom file to load (may be gzip, zip or 7z compressed)")
	cycles := flag.Int("cycles", 100000, "The number of M-cycles to run")
	trace := flag.Bool("trace", false, "Log the CPU after every cycle once PC passes 0x000B")
	breakpoint := flag.String("break", "", "Stop when the next instruction is at this address (hex)")
	state := flag.String("state", "", "The state file to load")
	saveState := flag.String("save-state", "", "Write the final state to this file")
	digest := flag.Bool("digest", false, "Print the xxhash digest of the final machine state")
	debug := flag.Bool("debug", false, "Enable debug logging")
	pprof := flag.String("pprof", "", "Serve pprof on this address, e.g. localhost:6060")
	model := flag.String("model", "", "Require the boot rom to be for this model (DMG0, DMG, MGB, SGB, SGB2)")
	flag.Parse()

	logger := log.New()
	if *debug || *trace {
		logger = log.NewDebug()
	}

	if *pprof != "" {
		// start pprof
		go func() {
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				logger.Errorf("pprof: %v", err)
			}
		}()
	}

	if *bootROM == "" {
		logger.Errorf("no boot rom given, use -boot")
		os.Exit(2)
	}
	boot, err := utils.LoadFile(*bootROM)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *trace {
		opts = append(opts, gameboy.WithTrace(0x000B))
	}
	if *breakpoint != "" {
		pc, err := parseAddress(*breakpoint)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(2)
		}
		opts = append(opts, gameboy.WithBreakpoint(pc))
	}

	gb, err := gameboy.New(boot, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.Infof("boot rom model %s", gb.Model())
	if *model != "" {
		if err := checkModel(*model, gb.Model()); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if *state != "" {
		if err := gb.LoadStateFile(*state); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
	}

	ran, runErr := gb.Run(*cycles)
	switch {
	case runErr == nil:
		logger.Infof("ran %d cycles, %s", ran, gb.CPU)
	case errors.Is(runErr, gameboy.ErrBreakpoint):
		logger.Infof("breakpoint after %d cycles, %s", ran, gb.CPU)
		runErr = nil
	default:
		logger.Errorf("stopped after %d cycles: %v", ran, runErr)
		logger.Errorf("%s", gb.CPU)
	}

	if *saveState != "" {
		if err := gb.SaveStateFile(*saveState); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if *digest {
		fmt.Printf("%016x\n", gb.Digest())
	}
	if runErr != nil {
		os.Exit(1)
	}
}

// parseAddress parses a 16-bit hex address, with or without a 0x prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address %q", s)
	}
	return uint16(v), nil
}

// checkModel fails unless got is the model named by want.
func checkModel(want string, got types.Model) error {
	m := types.StringToModel(want)
	if m == types.Unset {
		return errors.Errorf("unknown model %q", want)
	}
	if m != got {
		return errors.Errorf("boot rom is for %s, not %s", got, m)
	}
	return nil
}
