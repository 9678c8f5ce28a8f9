package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

func run(deps CommandDeps, domain string, seed uint64, format, out string) error {
	format = strings.ToLower(format)

	dataset, err := deps.ViewsService.GetDataset(domain, seed)
	if err != nil {
		return err
	}

	var body []byte
	switch format {
	case "json":
		body, err = json.MarshalIndent(dataset, "", "  ")
	case "msgpack":
		body, err = msgpack.Marshal(dataset)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if out == "" {
		out = fmt.Sprintf("ie-%s.%s", domain, format)
	}
	if err := os.WriteFile(out, body, 0o644); err != nil {
		return err
	}

	log.Info().Str("domain", domain).Uint64("seed", seed).Str("out", out).Msg("dataset exported")
	return nil
}
