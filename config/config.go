package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv overlays process environment variables from a .env file
// in the working directory, if one exists. A missing file is not an
// error - only present so operators can keep local overrides out of
// their shell profile.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Args is the parsed command line for cmd/dogworldd, mirroring the
// original server's --config-file/--www-root/--tick-period/
// --randomize-spawn-points flags.
type Args struct {
	ConfigFile          string
	WWWRoot             string
	TickPeriod          time.Duration
	HasTickPeriod       bool
	RandomizeSpawnPoint bool
}

// ParseArgs parses args (typically os.Args[1:]) into Args. Both
// ConfigFile and WWWRoot are required.
func ParseArgs(args []string) (Args, error) {
	fs := flag.NewFlagSet("dogworldd", flag.ContinueOnError)

	configFile := fs.String("config-file", "", "path to the map catalog JSON file")
	wwwRoot := fs.String("www-root", "", "directory of static files to serve")
	tickPeriodMS := fs.Uint64("tick-period", 0, "automatic tick period in milliseconds; omit for client-driven ticking")
	randomizeSpawn := fs.Bool("randomize-spawn-points", false, "spawn dogs at random positions on their roads")

	if err := fs.Parse(args); err != nil {
		return Args{}, err
	}

	if *configFile == "" {
		return Args{}, fmt.Errorf("config: --config-file is required")
	}
	if *wwwRoot == "" {
		return Args{}, fmt.Errorf("config: --www-root is required")
	}

	parsed := Args{
		ConfigFile:          *configFile,
		WWWRoot:             *wwwRoot,
		RandomizeSpawnPoint: *randomizeSpawn,
	}
	if *tickPeriodMS > 0 {
		parsed.TickPeriod = time.Duration(*tickPeriodMS) * time.Millisecond
		parsed.HasTickPeriod = true
	}
	return parsed, nil
}
