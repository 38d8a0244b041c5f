package obfuscation

import (
	"strings"

	"github.com/freighter-cd/freighter-cd-runner/api"
)

const maxLengthToSkipObfuscation = 3

// Client hides injected credential values and other sensitive stuff from the logs
//go:generate mockgen -package=obfuscation -destination ./mock.go -source=client.go
type Client interface {
	CollectSecrets(config api.RunConfig)
	Obfuscate(input string) string
}

// NewClient returns a new obfuscation.Client
func NewClient() (Client, error) {
	return &client{
		replacer: strings.NewReplacer(),
	}, nil
}

type client struct {
	replacer *strings.Replacer
}

func (c *client) CollectSecrets(config api.RunConfig) {

	replacerStrings := []string{}

	for _, v := range config.SecretValues() {
		for _, l := range strings.Split(v, "\n") {
			if len(l) > maxLengthToSkipObfuscation {
				replacerStrings = append(replacerStrings, l, "***")
			}
		}
	}

	c.replacer = strings.NewReplacer(replacerStrings...)
}

func (c *client) Obfuscate(input string) string {
	return c.replacer.Replace(input)
}
