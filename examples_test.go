package xsb

import (
	"fmt"
	"log"
)

func ExampleDecodeSoundBank() {
	bank, err := DecodeSoundBank(buildTrivialBankData())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(bank.Name)
	fmt.Println(bank.WaveBanks[0].Name)
	fmt.Printf("%d cue(s), %d sound(s)\n", len(bank.Cues), len(bank.Sounds))

	wave := bank.Sounds[0].Tracks[0].Waves[0]
	fmt.Printf("wave %d in %s\n", wave.Index, wave.Bank)

	// Output:
	// GLOBAL
	// MUSIC_BANK
	// 1 cue(s), 1 sound(s)
	// wave 7 in MUSIC_BANK
}
