package tournament

import (
	"bytes"
	"encoding/json"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/school-tournament/internal/domain/competition"
	"github.com/riskibarqy/school-tournament/internal/domain/fixture"
	"github.com/riskibarqy/school-tournament/internal/domain/score"
	"github.com/valyala/bytebufferpool"
)

// ErrMalformedRecord means a stored record cannot be turned back into a
// tournament and the caller should start from the default state.
var ErrMalformedRecord = crerr.New("malformed tournament record")

type stateRecord struct {
	Schools           []string                     `json:"schools"`
	ActiveCompetition string                       `json:"activeCompetition"`
	Competitions      map[string]competitionRecord `json:"competitions"`
	LastSaved         *string                      `json:"lastSaved"`
}

type competitionRecord struct {
	Schedule []fixture.Round `json:"schedule"`
	Scores   score.Book      `json:"scores"`
}

// rawStateRecord defers decoding so each part can be sanitized on its own.
type rawStateRecord struct {
	Schools           json.RawMessage `json:"schools"`
	ActiveCompetition json.RawMessage `json:"activeCompetition"`
	Competitions      json.RawMessage `json:"competitions"`
	LastSaved         json.RawMessage `json:"lastSaved"`
}

// Encode renders the state in its persisted JSON shape.
func Encode(s State) ([]byte, error) {
	record := stateRecord{
		Schools:           s.Schools,
		ActiveCompetition: competition.ParseOrDefault(s.ActiveCompetition.String()).String(),
		Competitions:      make(map[string]competitionRecord, len(competition.All)),
	}
	if record.Schools == nil {
		record.Schools = []string{}
	}
	for _, c := range competition.All {
		cs := s.Competition(c)
		record.Competitions[c.String()] = competitionRecord{
			Schedule: cs.Schedule,
			Scores:   cs.Scores,
		}
	}
	if s.LastSaved != nil {
		stamp := s.LastSaved.UTC().Format(time.RFC3339Nano)
		record.LastSaved = &stamp
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigStd.NewEncoder(buf).Encode(record); err != nil {
		return nil, crerr.Wrap(err, "encode tournament record")
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// Decode parses a persisted record. A record whose schools are not a list of
// strings, or that carries no competitions, is rejected with
// ErrMalformedRecord. Everything below that level is sanitized instead:
// malformed schedules become empty, malformed scores become empty and an
// unknown active competition becomes boys.
func Decode(data []byte) (State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return State{}, crerr.Wrap(ErrMalformedRecord, "empty record")
	}

	var raw rawStateRecord
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return State{}, crerr.Wrapf(ErrMalformedRecord, "parse record: %v", err)
	}

	var schools []string
	if isNull(raw.Schools) {
		return State{}, crerr.Wrap(ErrMalformedRecord, "schools is not a list")
	}
	if err := sonic.Unmarshal(raw.Schools, &schools); err != nil {
		return State{}, crerr.Wrapf(ErrMalformedRecord, "schools is not a list: %v", err)
	}
	if isFalsy(raw.Competitions) {
		return State{}, crerr.Wrap(ErrMalformedRecord, "competitions missing")
	}

	var competitions map[string]json.RawMessage
	if err := sonic.Unmarshal(raw.Competitions, &competitions); err != nil {
		competitions = nil
	}

	out := State{
		Schools:           schools,
		ActiveCompetition: decodeActiveCompetition(raw.ActiveCompetition),
		Competitions:      make(map[competition.Competition]CompetitionState, len(competition.All)),
		LastSaved:         decodeLastSaved(raw.LastSaved),
	}
	if out.Schools == nil {
		out.Schools = []string{}
	}
	for _, c := range competition.All {
		out.Competitions[c] = sanitizeCompetition(competitions[c.String()])
	}

	return out, nil
}

func sanitizeCompetition(data json.RawMessage) CompetitionState {
	out := CompetitionState{Schedule: []fixture.Round{}, Scores: score.NewBook()}

	var fields map[string]json.RawMessage
	if isNull(data) || sonic.Unmarshal(data, &fields) != nil || fields == nil {
		return out
	}

	var schedule []fixture.Round
	if raw, ok := fields["schedule"]; ok && !isNull(raw) && sonic.Unmarshal(raw, &schedule) == nil && schedule != nil {
		out.Schedule = schedule
	}

	var scores map[string]score.Score
	if raw, ok := fields["scores"]; ok && !isNull(raw) && sonic.Unmarshal(raw, &scores) == nil {
		for id, s := range scores {
			if s.Validate() != nil {
				continue
			}
			out.Scores[id] = s
		}
	}

	return out
}

func decodeActiveCompetition(data json.RawMessage) competition.Competition {
	var value string
	if isNull(data) || sonic.Unmarshal(data, &value) != nil {
		return competition.Boys
	}
	return competition.ParseOrDefault(value)
}

func decodeLastSaved(data json.RawMessage) *time.Time {
	var value string
	if isNull(data) || sonic.Unmarshal(data, &value) != nil || value == "" {
		return nil
	}
	stamp, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &stamp
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// isFalsy treats the JSON values a loose truthiness check rejects as absent.
func isFalsy(data json.RawMessage) bool {
	if isNull(data) {
		return true
	}
	switch string(bytes.TrimSpace(data)) {
	case "false", "0", `""`:
		return true
	default:
		return false
	}
}
