package domain

// LogEntry is one immutable row of the ix_logs table. Rows are written
// by the game server; the panel only ever reads them.
type LogEntry struct {
	ID       int64   `db:"id" json:"id"`
	SteamID  string  `db:"steamid" json:"steamid"`
	CharID   *int64  `db:"char_id" json:"char_id"`
	LogType  string  `db:"log_type" json:"log_type"`
	PosX     float64 `db:"pos_x" json:"pos_x"`
	PosY     float64 `db:"pos_y" json:"pos_y"`
	PosZ     float64 `db:"pos_z" json:"pos_z"`
	Map      string  `db:"map" json:"map"`
	Datetime int64   `db:"datetime" json:"datetime"`
	Text     *string `db:"text" json:"text"`
	Lookup1  *string `db:"lookup1" json:"lookup1"`
	Lookup2  *string `db:"lookup2" json:"lookup2"`
	Lookup3  *string `db:"lookup3" json:"lookup3"`
}

// Log types written by the gamemode. The set is open ended, unknown
// types render as plain text lines.
const (
	LogTypeChat              = "chat"
	LogTypeCommand           = "command"
	LogTypeConnect           = "connect"
	LogTypeDisconnect        = "disconnect"
	LogTypeCharacterLoaded   = "characterLoaded"
	LogTypeCharacterUnloaded = "characterUnloaded"
	LogTypeTicketClaimed     = "ticketClaimed"
)

// ContextBundle holds the logs surrounding a target log in time. Rows
// sharing the target's exact timestamp belong to neither side; only the
// target row itself is the target.
type ContextBundle struct {
	Before []LogEntry `json:"before"`
	Target LogEntry   `json:"target"`
	After  []LogEntry `json:"after"`
}

// TicketStat is one row of the ticket-claim leaderboard. DisplayName is
// nil when the player has no ix_players record.
type TicketStat struct {
	SteamID     string  `db:"steamid" json:"steamid"`
	DisplayName *string `db:"display_name" json:"display_name"`
	Count       int64   `db:"count" json:"count"`
}

// RankCheck is the outcome of an authorization check against the
// configured admin mod.
type RankCheck struct {
	Authorized bool   `json:"authorized"`
	Rank       string `json:"rank,omitempty"`
	Message    string `json:"message,omitempty"`
}
