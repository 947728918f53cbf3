// nbx - nanbox word inspector
//
// Reads 64-bit words as hexadecimal arguments (or stdin lines, one word
// per line) and prints how the nanbox encoding classifies each: genuine
// float, reserved special value, or tagged immediate with its tag
// nibble and both payload readings.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/nanbox"
	"github.com/chazu/nanbox/wire"
)

func main() {
	framePath := flag.String("frame", "", "Decode a CBOR frame file and dump its words")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nbx [options] [words...]\n\n")
		fmt.Fprintf(os.Stderr, "Classifies 64-bit words under the nanbox encoding.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nbx 0x7ff0000000000000          # classify one word\n")
		fmt.Fprintf(os.Stderr, "  nbx 0xfffa00000000029a 12345    # hex with or without prefix\n")
		fmt.Fprintf(os.Stderr, "  cat words.txt | nbx             # one word per line\n")
		fmt.Fprintf(os.Stderr, "  nbx -frame dump.cbor            # dump a wire frame\n")
	}
	flag.Parse()

	if *framePath != "" {
		if err := dumpFrame(*framePath); err != nil {
			fmt.Fprintf(os.Stderr, "nbx: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			if err := classifyHex(arg); err != nil {
				fmt.Fprintf(os.Stderr, "nbx: %v\n", err)
				os.Exit(1)
			}
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := classifyHex(line); err != nil {
			fmt.Fprintf(os.Stderr, "nbx: %v\n", err)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "nbx: read stdin: %v\n", err)
		os.Exit(1)
	}
}

func classifyHex(s string) error {
	bits, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		return fmt.Errorf("bad word %q: %v", s, err)
	}
	classify(nanbox.Word(bits))
	return nil
}

func classify(w nanbox.Word) {
	switch {
	case w.IsNanbox():
		fmt.Printf("%#016x  nanbox  tag=%#x  unsigned=%d  signed=%d\n",
			uint64(w), w.TagNibble(), w.UnsignedPayload(), w.SignedPayload())
	case w.IsSpecialFloat():
		fmt.Printf("%#016x  special %v\n", uint64(w), w.Float64())
	default:
		fmt.Printf("%#016x  float   %v\n", uint64(w), w.Float64())
	}
}

func dumpFrame(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	frame, err := wire.UnmarshalFrame(data)
	if err != nil {
		return err
	}
	fmt.Printf("frame version %d, %d words\n", frame.Version, len(frame.Words))
	for _, w := range frame.Words {
		classify(w)
	}
	return nil
}
