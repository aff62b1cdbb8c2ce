package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dmg0345/pistache/httpdate"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configFilenameFlag string
	formatFlag         string
	verbosityTraceFlag bool
)

func init() {
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file")
	flag.StringVar(&formatFlag, "format", "", "Output format: rfc1123, rfc1123-gmt, rfc850 or asctime (overrides config)")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
}

func main() {
	flag.Parse()

	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}
	log.Logger = log.Level(logLevel).Output(zerolog.ConsoleWriter{Out: os.Stderr})

	formatName := "rfc1123-gmt"
	if configFilenameFlag != "" {
		config, err := getConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot read config file")
		}
		if config.Format != "" {
			formatName = config.Format
		}
	}
	if formatFlag != "" {
		formatName = formatFlag
	}

	format, err := formatFromName(formatName)
	if err != nil {
		log.Fatal().Err(err).Msg("Unsupported output format")
	}

	if flag.NArg() == 0 {
		log.Fatal().Msg("Please specify a date to parse")
	}

	// join the args so unquoted dates work as well
	date, err := httpdate.Parse(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot parse date")
	}
	fmt.Println(date.Format(format))
}

func formatFromName(name string) (httpdate.Format, error) {
	switch name {
	case "rfc1123":
		return httpdate.RFC1123, nil
	case "rfc1123-gmt":
		return httpdate.RFC1123GMT, nil
	case "rfc850":
		return httpdate.RFC850, nil
	case "asctime":
		return httpdate.AscTime, nil
	}
	return 0, fmt.Errorf("unknown format: %s", name)
}
