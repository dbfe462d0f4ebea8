package http

import (
	"time"

	"productivity-assistant/internal/voice"
)

const maxWait = 30 * time.Second

// --- Request DTOs ---

type statusReq struct {
	// Wait blocks until capture is idle, at most maxWait.
	Wait bool `form:"wait"`
}

type speakReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type statusResp struct {
	State      string `json:"state"`
	Strategy   string `json:"strategy"`
	Active     bool   `json:"active"`
	Transcript string `json:"transcript"`
	Committed  string `json:"committed"`
	Error      string `json:"error,omitempty"`
	ErrorCode  string `json:"error_code,omitempty"`
}

func newStatusResp(st voice.Status) statusResp {
	return statusResp{
		State:      string(st.State),
		Strategy:   string(st.Strategy),
		Active:     st.Active(),
		Transcript: st.Transcript,
		Committed:  st.Committed,
		Error:      st.Err,
		ErrorCode:  string(st.ErrorCode),
	}
}

type voiceResp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

type voicesResp struct {
	Voices []voiceResp `json:"voices"`
}

func newVoicesResp(vs []voice.VoiceOption) voicesResp {
	out := voicesResp{Voices: make([]voiceResp, 0, len(vs))}
	for _, v := range vs {
		out.Voices = append(out.Voices, voiceResp{ID: v.ID, Name: v.Name, Gender: v.Gender})
	}
	return out
}
