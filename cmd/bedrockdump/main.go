// Command bedrockdump decodes a single framed Bedrock packet payload —
// read from a file or stdin, never a socket — and logs the result. It
// exists to exercise the packet registry and handler dispatch end to end
// without pulling network I/O into the codec itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gstoney/bedrockproto/packet"
	"github.com/gstoney/bedrockproto/protocol"
)

func main() {
	configPath := flag.String("config", "bedrockdump.toml", "path to bedrockdump.toml")
	inputPath := flag.String("input", "", "path to a framed packet payload (defaults to stdin, or the config's input_path)")
	asServer := flag.Bool("server", true, "decode against the server-bound registry instead of the client-bound one")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bedrockdump: load config:", err)
		os.Exit(1)
	}

	logger := initLogger("bedrockdump", cfg.Verbose)

	path := *inputPath
	if path == "" {
		path = cfg.InputPath
	}

	payload, err := readPayload(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("read payload")
	}

	pool := packet.NewClientPool()
	if *asServer {
		pool = packet.NewServerPool()
	}

	r := protocol.NewReader(payload, cfg.ProtocolID)
	pk, err := packet.Decode(r, pool)
	if err != nil {
		logger.Error().Err(err).Uint32("protocol_id", cfg.ProtocolID).Msg("decode failed")
		os.Exit(1)
	}

	logger.Info().
		Uint32("network_id", pk.ID()).
		Int("direction", int(pk.Direction())).
		Int("remaining_bytes", r.Remaining()).
		Msgf("decoded %T", pk)

	pk.Handle(dumpHandler{logger: logger})
}

func initLogger(app string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{Out: os.Stdout}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

func readPayload(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// dumpHandler implements packet.Handler by logging and claiming the
// variants it overrides below; every other variant falls through to the
// embedded NopHandler and is refused. It demonstrates §6.3's dispatch
// contract without any real application logic behind it.
type dumpHandler struct {
	packet.NopHandler
	logger zerolog.Logger
}

func (h dumpHandler) HandleSetSpawnPosition(pk *packet.SetSpawnPosition) bool {
	h.logger.Debug().Interface("packet", pk).Msg("SetSpawnPosition")
	return true
}

func (h dumpHandler) HandleDisconnect(pk *packet.Disconnect) bool {
	h.logger.Debug().Interface("packet", pk).Msg("Disconnect")
	return true
}

func (h dumpHandler) HandleText(pk *packet.Text) bool {
	h.logger.Debug().Interface("packet", pk).Msg("Text")
	return true
}

func (h dumpHandler) HandleAvailableCommands(pk *packet.AvailableCommands) bool {
	h.logger.Debug().
		Int("commands", len(pk.Commands)).
		Int("soft_enums", len(pk.SoftEnums)).
		Int("constraints", len(pk.Constraints)).
		Msg("AvailableCommands")
	return true
}

func (h dumpHandler) HandleItemStackRequest(pk *packet.ItemStackRequest) bool {
	h.logger.Debug().Int32("request_id", pk.RequestID).Int("actions", len(pk.Actions)).Msg("ItemStackRequest")
	return true
}

func (h dumpHandler) HandlePlayerList(pk *packet.PlayerList) bool {
	h.logger.Debug().Int("type", int(pk.Type)).Int("entries", len(pk.Entries)).Msg("PlayerList")
	return true
}
