package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "handshake":
		return handshakeTemplate, nil
	case "blank":
		return blankTemplate, nil
	default:
		return "", fmt.Errorf("unknown manifest kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("manifest already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const handshakeTemplate = `title = "handshake fields"

# One [[field]] block per fixed-size ASCII field. capacity is the most
# characters the field may hold; value is the content to lint against it.

[[field]]
name = "proto.version"
capacity = 8
value = "v2.2"

[[field]]
name = "session.token"
capacity = 32
value = "temp-auth-key"

[[field]]
name = "peer.identity"
capacity = 24
value = "ghost.local"

[[field]]
name = "status.line"
capacity = 64
value = "ready"
`

const blankTemplate = `title = ""

[[field]]
name = "field.name"
capacity = 16
value = ""
`
