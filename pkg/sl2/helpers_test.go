package sl2

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"testing"
)

// testSlot はテスト用コンテナに書き込むスロットの内容
type testSlot struct {
	occupancy byte
	name      string
	level     uint32
	seconds   uint32
}

// encryptForTest は埋め込み鍵で AES-128-CBC 暗号化します (PKCS#7 パディング付き)
func encryptForTest(t *testing.T, plaintext, iv []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(saveKey[:])
	if err != nil {
		t.Fatalf("aes.NewCipher: %v", err)
	}
	pad := aes.BlockSize - len(plaintext)%aes.BlockSize
	buf := append(bytes.Clone(plaintext), bytes.Repeat([]byte{byte(pad)}, pad)...)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)
	return buf
}

// buildBody はプロファイルのレイアウトに従ってスロットを配置した平文の本体を作成します。
// slots の i 番目がスロット i に対応し、足りない分は空きスロットになります。
func buildBody(t *testing.T, p Profile, slots []testSlot) []byte {
	t.Helper()
	size := p.SlotDataOffset + p.ChecksumPrefixLength + p.CharacterSlotsCount*p.SlotLength
	body := make([]byte, size)

	// チェックサム領域はダミー値で埋める
	for i := 0; i < p.ChecksumPrefixLength; i++ {
		body[p.SlotsOccupancyOffset+i] = 0xCC
	}

	for i, s := range slots {
		l, err := layoutFor(p, i)
		if err != nil {
			t.Fatalf("layoutFor(%d): %v", i, err)
		}
		body[l.occupancyOffset] = s.occupancy
		name := EncodeUTF16String(s.name)
		if len(name) > p.NameSectionSize() {
			t.Fatalf("name %q is too long for the profile", s.name)
		}
		copy(body[l.nameOffset:], name)
		binary.LittleEndian.PutUint32(body[l.levelOffset:], s.level)
		binary.LittleEndian.PutUint32(body[l.timeOffset:], s.seconds)
	}
	return body
}

// buildContainer は fileIndex 番目のエントリに iv と payload を持つ BND4 コンテナを作成します
func buildContainer(t *testing.T, fileIndex int, entryName string, iv, payload []byte) []byte {
	t.Helper()
	if len(iv) != IVLength {
		t.Fatalf("iv must be %d bytes", IVLength)
	}
	count := fileIndex + 1
	nameOffset := EntryHeaderOffset + EntryHeaderLength*count
	name := EncodeUTF16String(entryName)
	dataOffset := nameOffset + len(name)

	raw := make([]byte, dataOffset+IVLength+len(payload))
	copy(raw, "BND4")
	binary.LittleEndian.PutUint32(raw[EntryCountOffset:], uint32(count))

	for i := 0; i < count; i++ {
		h := EntryHeaderOffset + EntryHeaderLength*i
		if i != fileIndex {
			// 対象外のエントリは名前だけ共有する
			binary.LittleEndian.PutUint32(raw[h+entryNameOffsetField:], uint32(nameOffset))
			continue
		}
		binary.LittleEndian.PutUint32(raw[h+entrySizeField:], uint32(IVLength+len(payload)))
		binary.LittleEndian.PutUint32(raw[h+entryDataOffsetField:], uint32(dataOffset))
		binary.LittleEndian.PutUint32(raw[h+entryNameOffsetField:], uint32(nameOffset))
	}

	copy(raw[nameOffset:], name)
	copy(raw[dataOffset:], iv)
	copy(raw[dataOffset+IVLength:], payload)
	return raw
}

func testIV() []byte {
	return []byte{
		0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7,
		0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF,
	}
}

// sampleSlots は Alice / Bob の2スロットが使用中で残りが空きのスロット一覧
func sampleSlots() []testSlot {
	return []testSlot{
		{occupancy: 1, name: "Alice", level: 5, seconds: 3661},
		{occupancy: 1, name: "Bob", level: 42, seconds: 7325},
	}
}

func sampleCharacters() []Character {
	return []Character{
		{Slot: 1, Name: "Alice", Level: 5, ElapsedSeconds: 3661, ElapsedFormatted: "01:01:01"},
		{Slot: 2, Name: "Bob", Level: 42, ElapsedSeconds: 7325, ElapsedFormatted: "02:02:05"},
	}
}

func mustLookup(t *testing.T, key string) Profile {
	t.Helper()
	p, err := DefaultRegistry().Lookup(key)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", key, err)
	}
	return p
}
