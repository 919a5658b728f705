// Package steamid parses the textual SteamID formats players show up
// with and renders the form the configured admin mod stores.
package steamid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Steam64 value of STEAM_0:0:0. Account ids count up from here.
const individualBase uint64 = 76561197960265728

var ErrInvalidSteamID = errors.New("invalid steamid")

var (
	steam2Re  = regexp.MustCompile(`^STEAM_[0-5]:([01]):(\d+)$`)
	steam3Re  = regexp.MustCompile(`^\[?U:1:(\d+)\]?$`)
	steam64Re = regexp.MustCompile(`^\d{17}$`)
)

// Form is the rendered form an admin-mod schema stores identities in.
type Form int

const (
	FormSteam2 Form = iota
	FormSteam64
)

// SteamID is an individual account id in steam64 representation.
type SteamID uint64

// Parse accepts steam64 ("76561198236432500"), steam2
// ("STEAM_0:0:138083386") and steam3 ("[U:1:276166772]") input. The
// input is trimmed first; anything else fails with ErrInvalidSteamID.
func Parse(raw string) (SteamID, error) {
	s := strings.TrimSpace(raw)

	if m := steam2Re.FindStringSubmatch(s); m != nil {
		server, _ := strconv.ParseUint(m[1], 10, 64)
		auth, _ := strconv.ParseUint(m[2], 10, 64)
		return SteamID(individualBase + auth*2 + server), nil
	}

	if m := steam3Re.FindStringSubmatch(s); m != nil {
		account, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, raw)
		}
		return SteamID(individualBase + account), nil
	}

	if steam64Re.MatchString(s) {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id < individualBase {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, raw)
		}
		return SteamID(id), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSteamID, raw)
}

// Steam64 renders the id as the 17-digit account number ix_logs stores.
func (s SteamID) Steam64() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Steam2 renders the id as STEAM_0:X:Y, the form every supported admin
// mod keys its player tables by.
func (s SteamID) Steam2() string {
	account := uint64(s) - individualBase
	return fmt.Sprintf("STEAM_0:%d:%d", account%2, account/2)
}

// Render produces the requested form.
func (s SteamID) Render(f Form) string {
	if f == FormSteam64 {
		return s.Steam64()
	}
	return s.Steam2()
}
