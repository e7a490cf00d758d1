package capability

import (
	"fmt"
	"sync"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize 二维码边长 (像素)
const DefaultQRSize = 256

// QRCodeGenerator 生成指向应用地址的二维码 PNG
// 内容固定，结果缓存在内存里
type QRCodeGenerator struct {
	content string
	size    int

	once sync.Once
	png  []byte
	err  error
}

// NewQRCodeGenerator content 为空时返回 nil (即该能力未配置)
func NewQRCodeGenerator(content string, size int) *QRCodeGenerator {
	if content == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	return &QRCodeGenerator{content: content, size: size}
}

// Content 二维码中编码的内容
func (q *QRCodeGenerator) Content() string { return q.content }

// PNG 返回二维码图片
func (q *QRCodeGenerator) PNG() ([]byte, error) {
	if q == nil {
		return nil, ErrUnavailable
	}
	q.once.Do(func() {
		q.png, q.err = qrcode.Encode(q.content, qrcode.Medium, q.size)
		if q.err != nil {
			q.err = fmt.Errorf("生成二维码失败: %w", q.err)
		}
	})
	return q.png, q.err
}
