// This tool prints a summary of the passed binary XACT sound bank.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/xsb"
)

const missingPathMessage = "You must pass the path of the sound bank to decode"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	bank, err := xsb.ReadSoundBank(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sound bank: %s\n", bank.Name)

	fmt.Fprintf(out, "Wave banks: %d\n", len(bank.WaveBanks))
	for _, waveBank := range bank.WaveBanks {
		fmt.Fprintf(out, "\t%s\n", waveBank.Name)
	}

	fmt.Fprintf(out, "Sounds: %d\n", len(bank.Sounds))
	for i, sound := range bank.Sounds {
		fmt.Fprintf(out, "\t[%d] %d track(s), volume %.2f dB, pitch %.2f st",
			i, len(sound.Tracks), sound.Volume, sound.Pitch)

		if sound.Is3D {
			fmt.Fprint(out, ", 3D")
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Cues: %d\n", len(bank.Cues))
	for i, cue := range bank.Cues {
		name := cue.Name
		if name == "" {
			name = fmt.Sprintf("<unnamed %d>", i)
		}

		fmt.Fprintf(out, "\t%s: %d variation(s), %s selection\n",
			name, len(cue.Variations), cue.VariationSelectMethod)
	}

	return nil
}
