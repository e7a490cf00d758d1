// Package capability 可选的外部能力: 语音播报、语音识别、二维码
//
// 路径规划不依赖这些能力；没有配置实现时，对应的接口返回 501。
package capability

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable 能力未配置
var ErrUnavailable = errors.New("capability: 未配置")

// Audio 一段音频
type Audio struct {
	ContentType string // 例如 audio/mpeg
	Data        []byte
}

// Speaker 文字转语音
type Speaker interface {
	Speak(ctx context.Context, text string) (Audio, error)
}

// Transcriber 语音转文字
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// SpeakerFunc 让普通函数实现 Speaker
type SpeakerFunc func(ctx context.Context, text string) (Audio, error)

func (f SpeakerFunc) Speak(ctx context.Context, text string) (Audio, error) { return f(ctx, text) }

// TranscriberFunc 让普通函数实现 Transcriber
type TranscriberFunc func(ctx context.Context, audio io.Reader) (string, error)

func (f TranscriberFunc) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	return f(ctx, audio)
}

// Set 一组可选能力，字段为 nil 表示未配置
type Set struct {
	Speaker     Speaker
	Transcriber Transcriber
	QRCode      *QRCodeGenerator
}
