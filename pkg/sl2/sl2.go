// Package sl2 は FromSoftware 作品のセーブデータ (.sl2, BND4 コンテナ) を読み込むためのパッケージです。
//
// サポートするプロファイル:
//   - er: ELDEN RING (平文)
//   - ds3: DARK SOULS III (AES-128-CBC で暗号化)
//
// 基本的な使い方:
//
//	parser := sl2.NewParser(sl2.DefaultRegistry())
//	container, err := parser.Parse(raw, "er")
//	if err != nil {
//	    return err
//	}
//	characters, err := sl2.Extract(container)
package sl2

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// EntryCountOffset はヘッダ内のエントリ数フィールドの位置
	EntryCountOffset = 12

	// EntryHeaderOffset はエントリヘッダテーブルの開始位置
	EntryHeaderOffset = 64

	// EntryHeaderLength はエントリヘッダ1件あたりのサイズ
	EntryHeaderLength = 32

	// IVLength はエントリデータ先頭の IV の長さ
	IVLength = 16

	entrySizeField       = 8
	entryDataOffsetField = 16
	entryNameOffsetField = 20
)

// Entry は BND4 エントリヘッダの内容を表します
type Entry struct {
	Index      int
	Size       uint32 // IV を含むデータ領域のサイズ
	DataOffset uint32
	NameOffset uint32
	Name       string
}

// ReadEntry は index 番目のエントリヘッダを読み込みます
func ReadEntry(raw []byte, index int) (Entry, error) {
	headerOffset, err := entryHeaderOffset(raw, index)
	if err != nil {
		return Entry{}, err
	}

	size, err := readU32(raw, headerOffset+entrySizeField)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d size: %w", index, err)
	}
	dataOffset, err := readU32(raw, headerOffset+entryDataOffsetField)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d data offset: %w", index, err)
	}
	nameOffset, err := readU32(raw, headerOffset+entryNameOffsetField)
	if err != nil {
		return Entry{}, fmt.Errorf("entry %d name offset: %w", index, err)
	}
	if uint64(nameOffset) > uint64(len(raw)) {
		return Entry{}, fmt.Errorf("%w: entry %d name offset %d > filesize %d", ErrOutOfBounds, index, nameOffset, len(raw))
	}

	return Entry{
		Index:      index,
		Size:       size,
		DataOffset: dataOffset,
		NameOffset: nameOffset,
		Name:       DecodeUTF16String(raw, int(nameOffset)),
	}, nil
}

// ReadEntries はヘッダのエントリ数に従って全エントリヘッダを読み込みます
func ReadEntries(raw []byte) ([]Entry, error) {
	count, err := readU32(raw, EntryCountOffset)
	if err != nil {
		return nil, fmt.Errorf("entry count: %w", err)
	}

	// テーブル全体が収まるか先に確認する
	tableEnd := uint64(EntryHeaderOffset) + uint64(EntryHeaderLength)*uint64(count)
	if tableEnd > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: entry table of %d entries ends at %d > filesize %d", ErrOutOfBounds, count, tableEnd, len(raw))
	}

	entries := make([]Entry, 0, count)
	for i := 0; i < int(count); i++ {
		entry, err := ReadEntry(raw, i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Data はエントリのデータ領域を IV と本体に分けて返します。
// 返すスライスは raw を参照します。
func (e Entry) Data(raw []byte) (iv, body []byte, err error) {
	if e.Size < IVLength {
		return nil, nil, fmt.Errorf("%w: entry %d size %d < iv length %d", ErrOutOfBounds, e.Index, e.Size, IVLength)
	}
	end := uint64(e.DataOffset) + uint64(e.Size)
	if end > uint64(len(raw)) {
		return nil, nil, fmt.Errorf("%w: entry %d data %d+%d > filesize %d", ErrOutOfBounds, e.Index, e.DataOffset, e.Size, len(raw))
	}

	start := int(e.DataOffset)
	return raw[start : start+IVLength], raw[start+IVLength : int(end)], nil
}

// readU32 は offset から リトルエンディアンの uint32 を読み込みます
// entryHeaderOffset は index 番目のエントリヘッダの位置を返します。
// ヘッダの読み込み対象のフィールドがファイル内に収まらない場合はエラーを返します。
func entryHeaderOffset(raw []byte, index int) (int, error) {
	if index < 0 || int64(index) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: entry index %d", ErrOutOfBounds, index)
	}
	offset := uint64(EntryHeaderOffset) + uint64(EntryHeaderLength)*uint64(index)
	if offset+entryNameOffsetField+4 > uint64(len(raw)) {
		return 0, fmt.Errorf("%w: entry %d header at %d, filesize %d", ErrOutOfBounds, index, offset, len(raw))
	}
	return int(offset), nil
}

func readU32(buf []byte, offset int) (uint32, error) {
	if offset < 0 || offset > len(buf)-4 {
		return 0, fmt.Errorf("%w: u32 at %d, buffer size %d", ErrOutOfBounds, offset, len(buf))
	}
	return binary.LittleEndian.Uint32(buf[offset:]), nil
}
