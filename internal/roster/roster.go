// Package roster reads the roster file used to provision duty members.
package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a roster file:
//
//	members:
//	  - slack_id: U012AB3CD
//	    name: Alice
//	    kana: ありす
//	    grade: B4
type File struct {
	Members []Entry `yaml:"members"`
}

type Entry struct {
	SlackID string `yaml:"slack_id"`
	Name    string `yaml:"name"`
	Kana    string `yaml:"kana"`
	Grade   string `yaml:"grade"`
}

// Load reads and validates the roster file at path.
func Load(path string) ([]entity.Member, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a roster document.
func Parse(r io.Reader) ([]entity.Member, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("roster file is empty")
		}
		return nil, fmt.Errorf("failed to decode roster file: %w", err)
	}

	seen := make(map[string]bool, len(file.Members))
	members := make([]entity.Member, 0, len(file.Members))
	for i, e := range file.Members {
		member := entity.Member{
			SlackUserID: strings.TrimSpace(e.SlackID),
			Name:        strings.TrimSpace(e.Name),
			Kana:        strings.TrimSpace(e.Kana),
			Grade:       strings.TrimSpace(e.Grade),
		}

		switch {
		case member.SlackUserID == "":
			return nil, fmt.Errorf("member #%d: slack_id is required", i+1)
		case member.Name == "":
			return nil, fmt.Errorf("member %s: name is required", member.SlackUserID)
		case member.Grade == "":
			return nil, fmt.Errorf("member %s: grade is required", member.SlackUserID)
		case seen[member.SlackUserID]:
			return nil, fmt.Errorf("member %s is listed twice", member.SlackUserID)
		}

		seen[member.SlackUserID] = true
		members = append(members, member)
	}

	return members, nil
}
