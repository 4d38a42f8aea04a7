package websocket

import (
	"bufio"
	"crypto/sha1" //nolint: gosec // RFC 6455 requires the use of SHA-1 for WebSocket
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/congklak-backend/internal/congklak"
	"github.com/rocketscienceinc/congklak-backend/internal/entity"
)

// Static GUID defined in RFC 6455 for WebSocket.
const websocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

const (
	opText  byte = 0x1
	opClose byte = 0x8
)

// client messages are a few hundred bytes at most
const maxFrameSize = 1 << 16

var (
	errConnectionClosed = errors.New("connection closed by client")
	errFrameTooLarge    = errors.New("frame too large")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	length  uint64
	payload []byte
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Player *entity.Player        `json:"player,omitempty"`
	Game   *entity.Game          `json:"game,omitempty"`
	Moves  []congklak.MoveRecord `json:"moves,omitempty"`
	Hole   *int                  `json:"hole,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// generateAcceptKey - generates key for WebSocket handshake.
func generateAcceptKey(key string) string {
	h := sha1.New() //nolint: gosec // RFC 6455 requires the use of SHA-1 for WebSocket

	h.Write([]byte(key + websocketGUID))

	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (that *Server) sendMessage(bufrw *bufio.ReadWriter, action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	f := frame{
		isFin:   true,
		opCode:  opText,
		length:  uint64(len(responseBytes)),
		payload: responseBytes,
	}

	if err = writeFrame(bufrw.Writer, f); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, message string) error {
	return that.sendMessage(bufrw, action, Payload{Error: message})
}

func writeFrame(writer *bufio.Writer, frameData frame) error {
	header := []byte{frameData.opCode, 0}

	if frameData.isFin {
		header[0] |= 0x80
	}

	switch {
	case frameData.length < 126:
		header[1] = byte(frameData.length)
	case frameData.length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(frameData.length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, frameData.length)
	}

	if _, err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}

	if _, err := writer.Write(frameData.payload); err != nil {
		return fmt.Errorf("failed to write frame payload: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readRequest - reads one frame, returns nil for a non-final fragment.
func readRequest(reader *bufio.Reader) ([]byte, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	finBit := header[0] >> 7
	opCode := header[0] & 0x0f
	maskBit := header[1] >> 7

	if opCode == opClose {
		return nil, errConnectionClosed
	}

	size, err := readPayloadLength(reader, header[1]&0x7f)
	if err != nil {
		return nil, err
	}

	mask, err := readMask(reader, maskBit)
	if err != nil {
		return nil, err
	}

	payload, err := readData(reader, size, mask)
	if err != nil {
		return nil, err
	}

	if finBit == 1 {
		return payload, nil
	}

	return nil, nil
}

func readPayloadLength(reader io.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

func readMask(reader io.Reader, maskBit byte) ([]byte, error) {
	if maskBit == 0 {
		return nil, nil
	}

	mask := make([]byte, 4)
	if _, err := io.ReadFull(reader, mask); err != nil {
		return nil, fmt.Errorf("failed to read mask: %w", err)
	}

	return mask, nil
}

func readData(reader io.Reader, size uint64, mask []byte) ([]byte, error) {
	if size > maxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", errFrameTooLarge, size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if mask != nil {
		for i := range payload {
			payload[i] ^= mask[i%4]
		}
	}

	return payload, nil
}
