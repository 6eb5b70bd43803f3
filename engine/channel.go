package engine

import (
	"fmt"

	"github.com/cosmic-cipher/cryptocore/internal/logger"
	"github.com/cosmic-cipher/cryptocore/internal/zeroize"
	"github.com/cosmic-cipher/cryptocore/primitive"
)

// minFrameLen is the smallest legal sealed frame: a nonce plus an empty
// ciphertext carrying only the Poly1305 tag.
const minFrameLen = primitive.NonceSize + 16

// Seal compresses and encrypts plaintext for label's completed key exchange,
// returning nonce || ciphertext. The nonce itself is the associated data, so
// it cannot be altered in transit without invalidating the tag.
func (e *Engine) Seal(label string, plaintext []byte) ([]byte, error) {
	e.mu.Lock()
	secret, ok := e.sharedSecrets[label]
	e.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}

	compressed, err := primitive.Compress(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	nonce, err := primitive.RandomBytes(primitive.NonceSize)
	if err != nil {
		return nil, err
	}

	ciphertext, err := primitive.Seal(secret, nonce, compressed, nonce)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, len(nonce)+len(ciphertext))
	frame = append(frame, nonce...)
	frame = append(frame, ciphertext...)
	e.log.Debug("sealed frame", logger.Peer(label), logger.Op("seal"), logger.FrameBytes(len(frame)))
	return frame, nil
}

// Open reverses Seal: it splits the nonce, authenticates and decrypts, then
// decompresses the recovered plaintext.
func (e *Engine) Open(label string, frame []byte) ([]byte, error) {
	if len(frame) < minFrameLen {
		return nil, ErrFrameTooShort
	}

	e.mu.Lock()
	secret, ok := e.sharedSecrets[label]
	e.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}

	nonce := frame[:primitive.NonceSize]
	ciphertext := frame[primitive.NonceSize:]

	compressed, err := primitive.Open(secret, nonce, ciphertext, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := primitive.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	e.log.Debug("opened frame", logger.Peer(label), logger.Op("open"), logger.FrameBytes(len(frame)))
	return plaintext, nil
}

// CloseSession drops the shared secret held for label, zeroing it in place.
// It is a no-op if no session for label exists.
func (e *Engine) CloseSession(label string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if secret, ok := e.sharedSecrets[label]; ok {
		zeroize.Bytes(secret)
		delete(e.sharedSecrets, label)
		e.log.Debug("session closed", logger.Peer(label), logger.Op("close_session"))
	}
}
