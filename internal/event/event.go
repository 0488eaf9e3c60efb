// Package event loads the read-only event record used for response
// template interpolation. A missing or unreadable file falls back to
// the documented defaults and is never fatal.
package event

import (
	"encoding/json"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Info describes the party being assisted.
type Info struct {
	Location   string   `json:"location"`
	StartTime  string   `json:"start_time"`
	WifiPass   string   `json:"network_credential"`
	DressCode  string   `json:"dress_code"`
	BringItems []string `json:"items_to_bring"`
}

// Default returns the fallback event record.
func Default() Info {
	return Info{
		Location:   "Casa do Miguel, Porto",
		StartTime:  "21h00",
		WifiPass:   "CasaDoMiguel2025",
		DressCode:  "casual elegante",
		BringItems: []string{"boa disposição"},
	}
}

// Load reads the event record from path, substituting defaults for the
// whole record when unreadable and per field when missing.
func Load(path string) Info {
	def := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Warn("event config unreadable, using defaults")
		}
		return def
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		log.WithError(err).WithField("path", path).Warn("event config malformed, using defaults")
		return def
	}
	if info.Location == "" {
		info.Location = def.Location
	}
	if info.StartTime == "" {
		info.StartTime = def.StartTime
	}
	if info.WifiPass == "" {
		info.WifiPass = def.WifiPass
	}
	if info.DressCode == "" {
		info.DressCode = def.DressCode
	}
	if len(info.BringItems) == 0 {
		info.BringItems = def.BringItems
	}
	return info
}

// BringList renders the items-to-bring as a comma-joined phrase.
func (i Info) BringList() string {
	return strings.Join(i.BringItems, ", ")
}
