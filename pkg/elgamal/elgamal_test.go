package elgamal

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/smallyunet/ecc-core/pkg/mapper"
	"github.com/smallyunet/ecc-core/pkg/schema"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	s := schema.LoadSecp256k1()
	priv, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	msg := []byte("a 13-byte msg")
	m := mapper.New(s.Bits, s.Curve)
	plaintext, err := m.Pack(msg)
	if err != nil {
		t.Fatal(err)
	}

	ciphertext, err := Encrypt(rand.Reader, s, pub, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("got %d ciphertexts, want %d", len(ciphertext), len(plaintext))
	}

	recovered := Decrypt(s, priv, ciphertext)
	if len(recovered) != len(plaintext) {
		t.Fatalf("got %d recovered points, want %d", len(recovered), len(plaintext))
	}
	for i := range plaintext {
		if !recovered[i].Equal(plaintext[i]) {
			t.Fatalf("point %d: recovered %s, want %s", i, recovered[i], plaintext[i])
		}
	}

	got := bytes.TrimRight(m.Unpack(recovered), "\x00")
	if !bytes.Equal(got, msg) {
		t.Fatalf("end-to-end round trip = %q, want %q", got, msg)
	}
}

func TestEncryptUsesFreshSessionScalarPerPoint(t *testing.T) {
	s := schema.LoadSecp256k1()
	_, pub, err := s.GeneratePair(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	m := mapper.New(s.Bits, s.Curve)
	plaintext, err := m.Pack(bytes.Repeat([]byte("x"), 40))
	if err != nil {
		t.Fatal(err)
	}

	ciphertext, err := Encrypt(rand.Reader, s, pub, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if len(ciphertext) < 2 {
		t.Skip("not enough blocks to compare session scalars")
	}
	if ciphertext[0].C1.Equal(ciphertext[1].C1) {
		t.Fatal("C1 should differ across points: session scalar was reused")
	}
}
