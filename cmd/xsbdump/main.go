// This tool dumps a decoded binary XACT sound bank as YAML or plain
// text, mostly for diffing banks and debugging event timelines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/xsb"
	"gopkg.in/yaml.v3"
)

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("xsbdump", flag.ContinueOnError)

	format := flagSet.String("format", "yaml", "output format: yaml or text")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() < 1 {
		return errMissingPath
	}

	data, err := os.ReadFile(flagSet.Arg(0))
	if err != nil {
		return err
	}

	bank, err := xsb.DecodeSoundBank(data)
	if err != nil {
		return err
	}

	switch *format {
	case "yaml":
		return dumpYAML(out, bank)
	case "text":
		return dumpText(out, bank)
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}
}

func dumpYAML(out io.Writer, bank *xsb.SoundBank) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	err := enc.Encode(bank)
	if err != nil {
		return fmt.Errorf("failed to encode sound bank: %w", err)
	}

	return enc.Close()
}

func dumpText(out io.Writer, bank *xsb.SoundBank) error {
	fmt.Fprintf(out, "bank %q\n", bank.Name)

	for _, waveBank := range bank.WaveBanks {
		fmt.Fprintf(out, "wave bank %q\n", waveBank.Name)
	}

	for i, cue := range bank.Cues {
		fmt.Fprintf(out, "cue %d %q (%s)\n", i, cue.Name, cue.VariationSelectMethod)

		for _, variation := range cue.Variations {
			fmt.Fprintf(out, "\tsound %d, weight %d..%d\n",
				variation.SoundIndex, variation.WeightMin, variation.WeightMax)
		}
	}

	for i, sound := range bank.Sounds {
		fmt.Fprintf(out, "sound %d: volume %.2f dB, pitch %.2f st, priority %d\n",
			i, sound.Volume, sound.Pitch, sound.Priority)

		for j, track := range sound.Tracks {
			fmt.Fprintf(out, "\ttrack %d (%s)\n", j, track.VariationSelectMethod)

			for _, wave := range track.Waves {
				fmt.Fprintf(out, "\t\twave %d in %q, weight %d..%d\n",
					wave.Index, wave.Bank, wave.WeightMin, wave.WeightMax)
			}

			for _, event := range track.Events {
				fmt.Fprintf(out, "\t\t%s @%d\n", event.Type(), event.Time())
			}
		}
	}

	return nil
}
