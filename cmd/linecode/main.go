package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"Baseband/cmd/linecode/config"
	"Baseband/internel/utils"
	"Baseband/pkg/registry"
	"Baseband/pkg/symbol"
)

func main() {
	var configFile string
	var inputType string
	var scheme string
	var scrambling string
	var bits string
	var samples string
	var decode bool
	var plot bool
	var output string
	var verbose bool

	flag.StringVar(&configFile, "c", "", "YAML session file")
	flag.StringVar(&inputType, "t", "", "Input type (digital/analog)")
	flag.StringVar(&scheme, "s", "", "Scheme: NRZ-L, NRZ-I, Manchester, Differential Manchester, AMI, B8ZS, HDB3, PCM, DM")
	flag.StringVar(&scrambling, "scramble", "", "Scrambling for AMI (B8ZS/HDB3)")
	flag.StringVar(&bits, "b", "", "Digital data stream, e.g. 101001")
	flag.StringVar(&samples, "a", "", "Analog samples separated by space")
	flag.BoolVar(&decode, "d", false, "Decode the produced signal")
	flag.BoolVar(&plot, "p", false, "Plot the waveform")
	flag.StringVar(&output, "o", "", "Dump the produced signal to a binary file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := &config.Config{}
	if configFile != "" {
		var err error
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			log.Fatalf("[Config] %v: %v", configFile, err)
		}
		if verbose {
			log.Printf("[Config] loaded %v", configFile)
		}
	}

	// flags given on the command line win over the session file
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			cfg.Input.Type = inputType
		case "s":
			cfg.Encoding.Scheme = scheme
		case "scramble":
			cfg.Encoding.Scrambling = scrambling
		case "b":
			cfg.Input.Bits = bits
		case "d":
			cfg.Encoding.Decode = decode
		case "p":
			cfg.Output.Plot = plot
		case "o":
			cfg.Output.Binary = output
		}
	})
	if samples != "" {
		parsed, err := symbol.ParseSamples(samples)
		if err != nil {
			log.Fatalf("[Config] analog samples: %v", err)
		}
		cfg.Input.Samples = make([]float64, len(parsed))
		for i, s := range parsed {
			cfg.Input.Samples[i] = float64(s)
		}
	}
	if cfg.Input.Type == "" {
		cfg.Input.Type = "digital"
		if len(cfg.Input.Samples) != 0 {
			cfg.Input.Type = "analog"
		}
	}

	kind, err := cfg.Validate()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}

	switch kind {
	case registry.Digital:
		err = runDigital(cfg, verbose)
	case registry.Analog:
		err = runAnalog(cfg, verbose)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func runDigital(cfg *config.Config, verbose bool) error {
	bits, err := cfg.Bits()
	if err != nil {
		return fmt.Errorf("[Encode] %w", err)
	}

	fmt.Println("Longest Palindrome:", utils.LongestPalindrome(bits.String()))

	codec, err := registry.LineCoder(cfg.Encoding.Scheme, cfg.Encoding.Scrambling)
	if err != nil {
		return fmt.Errorf("[Encode] %w", err)
	}

	levels, err := codec.Encode(bits)
	if err != nil {
		return fmt.Errorf("[Encode] %w", err)
	}
	if verbose {
		log.Printf("[Encode] %v: %d bits -> %d levels", cfg.Encoding.Scheme, len(bits), len(levels))
	}
	fmt.Println("Digital Signal Produced:", levels)

	if cfg.Output.Plot {
		fmt.Print("Digital Data\n", utils.PlotSteps(bits))
		fmt.Printf("%v Encoding\n%v", cfg.Encoding.Scheme, utils.PlotSteps(levels))
	}

	if cfg.Encoding.Decode {
		decoded, err := codec.Decode(levels)
		if err != nil {
			return fmt.Errorf("[Decode] %w", err)
		}
		fmt.Println("Decoded Digital Stream:", decoded.String())
	}

	if cfg.Output.Binary != "" {
		if err := utils.WriteBinary(cfg.Output.Binary, levels); err != nil {
			return fmt.Errorf("[Output] %w", err)
		}
		if verbose {
			log.Printf("[Output] wrote %d levels to %v", len(levels), cfg.Output.Binary)
		}
	}
	return nil
}

func runAnalog(cfg *config.Config, verbose bool) error {
	modem, err := registry.Modem(cfg.Encoding.Scheme)
	if err != nil {
		return fmt.Errorf("[Encode] %w", err)
	}

	codes, err := modem.Modulate(cfg.Samples())
	if err != nil {
		return fmt.Errorf("[Encode] %w", err)
	}
	if verbose {
		log.Printf("[Encode] %v: %d samples -> %d codes", cfg.Encoding.Scheme, len(cfg.Input.Samples), len(codes))
	}
	fmt.Println("Digital Signal Produced:", codes)

	if cfg.Output.Plot {
		fmt.Printf("%v Modulation\n%v", cfg.Encoding.Scheme, utils.PlotSteps(codes))
	}

	if cfg.Encoding.Decode {
		decoded, err := modem.Demodulate(codes)
		if err != nil {
			return fmt.Errorf("[Decode] %w", err)
		}
		fmt.Println("Decoded Analog Signal:", decoded)
	}

	if cfg.Output.Binary != "" {
		if err := utils.WriteBinary(cfg.Output.Binary, codes); err != nil {
			return fmt.Errorf("[Output] %w", err)
		}
		if verbose {
			log.Printf("[Output] wrote %d codes to %v", len(codes), cfg.Output.Binary)
		}
	}
	return nil
}
