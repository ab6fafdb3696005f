package mcping

import (
	"encoding/json"
	"fmt"
)

// ServerStatus is the decoded json body of a status response.
type ServerStatus struct {
	Version     ServerVersion `json:"version"`
	Players     ServerPlayers `json:"players"`
	Description Description   `json:"description"`
	Favicon     string        `json:"favicon,omitempty"`
}

type ServerVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}

type ServerPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []PlayerSample `json:"sample,omitempty"`
}

type PlayerSample struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Description is the motd. Servers send it either as a plain json
// string or as a chat object, both end up in Text.
type Description struct {
	Text string
}

func (d *Description) UnmarshalJSON(bb []byte) error {
	var plain string
	if err := json.Unmarshal(bb, &plain); err == nil {
		d.Text = plain
		return nil
	}

	var object struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(bb, &object); err != nil {
		return err
	}
	d.Text = object.Text
	return nil
}

func (d Description) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"text"`
	}{Text: d.Text})
}

func (d Description) String() string {
	return d.Text
}

// UnmarshalServerStatus decodes the status json. Unknown fields are
// tolerated so newer servers keep working, but a response without a
// version name or a players object is rejected.
func UnmarshalServerStatus(bb []byte) (ServerStatus, error) {
	var raw struct {
		Version     *ServerVersion `json:"version"`
		Players     *ServerPlayers `json:"players"`
		Description Description    `json:"description"`
		Favicon     string         `json:"favicon"`
	}

	if err := json.Unmarshal(bb, &raw); err != nil {
		return ServerStatus{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	if raw.Version == nil || raw.Version.Name == "" {
		return ServerStatus{}, fmt.Errorf("%w: missing version name", ErrInvalidStatus)
	}
	if raw.Players == nil {
		return ServerStatus{}, fmt.Errorf("%w: missing players object", ErrInvalidStatus)
	}

	return ServerStatus{
		Version:     *raw.Version,
		Players:     *raw.Players,
		Description: raw.Description,
		Favicon:     raw.Favicon,
	}, nil
}
