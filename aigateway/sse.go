package aigateway

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

const (
	sseDataPrefix = "data:"
	sseDone       = "[DONE]"
	maxSSELine    = 1 << 20
)

type streamChunk struct {
	Model   string `json:"model"`
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
	Usage *Usage `json:"usage"`
}

// readSSE calls fn for every decodable data frame until [DONE] or EOF.
// Comment lines, other fields and frames that are not JSON are skipped.
// fn returning false stops reading.
func readSSE(r io.Reader, fn func(streamChunk) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxSSELine)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if !bytes.HasPrefix(line, []byte(sseDataPrefix)) {
			continue
		}
		data := bytes.TrimSpace(line[len(sseDataPrefix):])
		if string(data) == sseDone {
			return nil
		}
		var chunk streamChunk
		if err := json.Unmarshal(data, &chunk); err != nil {
			continue
		}
		if !fn(chunk) {
			return nil
		}
	}
	return sc.Err()
}
