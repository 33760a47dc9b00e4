// Command frametap reads a length-delimited capture of MQTT v5 packets
// from stdin — a uint32 big-endian length followed by that many raw
// packet bytes, repeated until EOF — and prints each packet's decoded
// structure. It is a tool built on top of the codec, not a broker.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/axmq/mqttcodec5/codeclog"
	"github.com/axmq/mqttcodec5/fixedheader"
	"github.com/axmq/mqttcodec5/packet"
	"github.com/cockroachdb/errors"
)

func main() {
	logger := codeclog.NewSlogLogger(slog.LevelInfo, os.Stderr)
	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("frametap failed", "error", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, logger *codeclog.SlogLogger) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	count := 0
	for {
		var length uint32
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("reading record length: %w", err)
		}

		raw := make([]byte, length)
		if _, err := io.ReadFull(r, raw); err != nil {
			return fmt.Errorf("reading record body: %w", err)
		}

		fh, n, err := fixedheader.ParseFromBytes(raw)
		if err != nil {
			fmt.Fprintf(w, "record %d: fixed header error: %v\n", count, err)
			count++
			continue
		}

		p, err := packet.Deserialize(fh, raw[n:])
		if err != nil && !errors.Is(err, packet.ErrServerRefused) {
			fmt.Fprintf(w, "record %d: %s decode error: %v\n", count, fh.Type, err)
			logger.Debug("decode failed", "type", fh.Type.String(), "remainingLength", fh.RemainingLength)
			count++
			continue
		}

		if err != nil {
			fmt.Fprintf(w, "record %d: %s %+v (refused)\n", count, fh.Type, p)
		} else {
			fmt.Fprintf(w, "record %d: %s %+v\n", count, fh.Type, p)
		}
		logger.Debug("decoded packet", "type", fh.Type.String(), "remainingLength", fh.RemainingLength)
		count++
	}

	logger.Debug("frametap finished", "records", count)
	return nil
}
