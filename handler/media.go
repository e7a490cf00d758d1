package handler

import (
	"net/http"

	"campus-nav/capability"
	"campus-nav/navigator"

	"github.com/gin-gonic/gin"
)

// MediaHandler 二维码、语音播报和语音输入接口
// 对应能力未配置时返回 501
type MediaHandler struct {
	nav  *navigator.Service
	caps capability.Set
}

// NewMediaHandler 创建 MediaHandler
func NewMediaHandler(nav *navigator.Service, caps capability.Set) *MediaHandler {
	return &MediaHandler{nav: nav, caps: caps}
}

// QRCode GET /api/qrcode - 指向应用地址的二维码 PNG
func (h *MediaHandler) QRCode(c *gin.Context) {
	png, err := h.caps.QRCode.PNG()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

// SpeakRequest 语音播报请求
// 给了 text 就直接播报；否则播报 start 到 end 的路线
type SpeakRequest struct {
	Text  string `json:"text"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Speak POST /api/speak - 文字转语音
func (h *MediaHandler) Speak(c *gin.Context) {
	if h.caps.Speaker == nil {
		respondError(c, capability.ErrUnavailable)
		return
	}

	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数错误: "+err.Error())
		return
	}

	text := req.Text
	if text == "" {
		if req.Start == "" || req.End == "" {
			badRequest(c, "需要 text，或者 start 和 end")
			return
		}
		result, err := h.nav.Route(req.Start, req.End)
		if err != nil {
			respondError(c, err)
			return
		}
		text = result.Directions
	}

	audio, err := h.caps.Speaker.Speak(c.Request.Context(), text)
	if err != nil {
		respondError(c, err)
		return
	}

	contentType := audio.ContentType
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	c.Data(http.StatusOK, contentType, audio.Data)
}

// Voice POST /api/voice - 语音输入，识别结果匹配到地点
// 请求体是原始音频
func (h *MediaHandler) Voice(c *gin.Context) {
	if h.caps.Transcriber == nil {
		respondError(c, capability.ErrUnavailable)
		return
	}

	snap := h.nav.Snapshot()
	if snap == nil {
		respondError(c, navigator.ErrNotLoaded)
		return
	}

	transcript, err := h.caps.Transcriber.Transcribe(c.Request.Context(), c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	loc, matched := snap.Registry.Resolve(transcript)
	resp := gin.H{
		"transcript": transcript,
		"matched":    matched,
	}
	if matched {
		resp["location"] = toPathNode(loc)
	}
	c.JSON(http.StatusOK, resp)
}

// RouteMedia GET /api/media?start=&end= - 查询两地之间的路线视频
func (h *MediaHandler) RouteMedia(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		badRequest(c, "需要 start 和 end")
		return
	}

	snap := h.nav.Snapshot()
	if snap == nil {
		respondError(c, navigator.ErrNotLoaded)
		return
	}

	url, ok := snap.Media.Lookup(start, end)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "media_not_found",
			"message": "该路线没有视频指引",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": start, "end": end, "url": url})
}
