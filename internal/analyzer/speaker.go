package analyzer

import (
	"strings"

	"call-insights-go/internal/types"
)

// assignRoles maps provider channels to roles using only the call direction:
// inbound puts the employee on channel 0, outbound swaps the mapping. When the
// provider returned no utterance segmentation it falls back to word-level
// speaker tags, coalescing consecutive same-speaker words into synthetic
// utterances.
func (a *Analyzer) assignRoles(tr types.TranscriptionResult, direction string) ([]types.Utterance, map[string]types.SpeakerTrack) {
	employeeChannel := 0
	if direction == types.DirectionOutbound {
		employeeChannel = 1
	}

	speakers := map[string]types.SpeakerTrack{
		types.RoleEmployee: {Channel: employeeChannel, Utterances: []string{}},
		types.RoleCustomer: {Channel: 1 - employeeChannel, Utterances: []string{}},
	}

	out := make([]types.Utterance, 0, len(tr.Utterances))
	switch {
	case len(tr.Utterances) > 0:
		for _, u := range tr.Utterances {
			role := types.RoleCustomer
			if u.SpeakerChannel == employeeChannel {
				role = types.RoleEmployee
			}
			out = append(out, types.Utterance{
				Speaker:    role,
				Text:       u.Text,
				Start:      u.Start,
				End:        u.End,
				Confidence: u.Confidence,
				Channel:    u.SpeakerChannel,
			})
			track := speakers[role]
			track.Utterances = append(track.Utterances, u.Text)
			speakers[role] = track
		}
	case len(tr.Words) > 0:
		out = coalesceWords(tr.Words, employeeChannel, speakers)
	default:
		a.log.Debug("no diarization in transcription result, role-keyed fields stay empty")
	}
	return out, speakers
}

// coalesceWords builds synthetic utterances from word-level diarization. A new
// utterance starts at every speaker change; its end is the next utterance's
// start, except for the final one which ends at the last word's end.
func coalesceWords(words []types.Word, employeeChannel int, speakers map[string]types.SpeakerTrack) []types.Utterance {
	out := make([]types.Utterance, 0, 8)

	currentRole := ""
	currentChannel := 0
	var parts []string
	var start float64

	flush := func(end float64) {
		if currentRole == "" || len(parts) == 0 {
			return
		}
		text := strings.Join(parts, " ")
		out = append(out, types.Utterance{
			Speaker: currentRole,
			Text:    text,
			Start:   start,
			End:     end,
			Channel: currentChannel,
		})
		track := speakers[currentRole]
		track.Utterances = append(track.Utterances, text)
		speakers[currentRole] = track
	}

	for _, w := range words {
		role := types.RoleCustomer
		if w.SpeakerChannel == employeeChannel {
			role = types.RoleEmployee
		}
		if role != currentRole {
			flush(w.Start)
			currentRole = role
			currentChannel = w.SpeakerChannel
			parts = []string{w.Word}
			start = w.Start
			continue
		}
		parts = append(parts, w.Word)
	}
	if len(words) > 0 {
		flush(words[len(words)-1].End)
	}
	return out
}
