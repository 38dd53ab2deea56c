package sl2

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Character はセーブスロットに保存されたキャラクター情報を表します
type Character struct {
	Slot             int    `json:"slot"` // 1始まり
	Name             string `json:"name"`
	Level            uint32 `json:"level"`
	ElapsedSeconds   uint32 `json:"elapsed_seconds"`
	ElapsedFormatted string `json:"elapsed_formatted"`
}

// slotLayout は1スロット分の位置情報 (本体先頭からのバイト位置)
type slotLayout struct {
	nameOffset      uint64
	levelOffset     uint64
	timeOffset      uint64
	end             uint64 // 経過時間フィールドの終端
	occupancyOffset uint64
}

// offsetCalc はオーバーフローを検出しながらオフセットを計算します
type offsetCalc struct {
	overflow bool
}

func (o *offsetCalc) add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		o.overflow = true
	}
	return sum
}

func (o *offsetCalc) mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		o.overflow = true
	}
	return lo
}

func layoutFor(p Profile, i int) (slotLayout, error) {
	if i < 0 || p.SlotDataOffset < 0 || p.SlotLength < 0 || p.SlotsOccupancyOffset < 0 ||
		p.ChecksumPrefixLength < 0 || p.CharacterNameMaxLen < 0 {
		return slotLayout{}, fmt.Errorf("%w: slot %d has a negative layout value", ErrOutOfBounds, i+1)
	}

	var o offsetCalc
	prefix := uint64(p.ChecksumPrefixLength)
	nameSection := o.add(o.mul(uint64(p.CharacterNameMaxLen), 2), 2)
	nameOffset := o.add(o.add(uint64(p.SlotDataOffset), prefix), o.mul(uint64(i), uint64(p.SlotLength)))
	levelOffset := o.add(nameOffset, nameSection)
	timeOffset := o.add(levelOffset, 4)
	l := slotLayout{
		nameOffset:      nameOffset,
		levelOffset:     levelOffset,
		timeOffset:      timeOffset,
		end:             o.add(timeOffset, 4),
		occupancyOffset: o.add(o.add(uint64(p.SlotsOccupancyOffset), prefix), uint64(i)),
	}
	if o.overflow {
		return slotLayout{}, fmt.Errorf("%w: slot %d offsets overflow", ErrOutOfBounds, i+1)
	}
	return l, nil
}

// Extract はコンテナ本体のスロットを順に走査し、使用中のスロットのキャラクターを返します。
// 占有バイトが 0 のスロットは空きとして読み飛ばします。
func Extract(c *Container) ([]Character, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil container", ErrOutOfBounds)
	}
	profile := c.Profile
	body := c.Body
	size := uint64(len(body))

	var characters []Character
	for i := 0; i < profile.CharacterSlotsCount; i++ {
		layout, err := layoutFor(profile, i)
		if err != nil {
			return nil, err
		}

		if layout.occupancyOffset >= size {
			return nil, fmt.Errorf("%w: slot %d occupancy byte at %d, body size %d", ErrOutOfBounds, i+1, layout.occupancyOffset, len(body))
		}
		if body[layout.occupancyOffset] == 0 {
			continue
		}

		// 名前・レベル・経過時間はこの順に並ぶので終端だけ確認すればよい
		if layout.end > size {
			return nil, fmt.Errorf("%w: slot %d ends at %d, body size %d", ErrOutOfBounds, i+1, layout.end, len(body))
		}
		level := binary.LittleEndian.Uint32(body[layout.levelOffset:])
		elapsed := binary.LittleEndian.Uint32(body[layout.timeOffset:])

		characters = append(characters, Character{
			Slot:             i + 1,
			Name:             DecodeUTF16String(body, int(layout.nameOffset)),
			Level:            level,
			ElapsedSeconds:   elapsed,
			ElapsedFormatted: FormatPlaytime(elapsed),
		})
	}

	return characters, nil
}

// ReadCharacters は raw をプロファイル profileKey として解析し、キャラクター一覧を返します
func (p *Parser) ReadCharacters(raw []byte, profileKey string) ([]Character, error) {
	c, err := p.Parse(raw, profileKey)
	if err != nil {
		return nil, err
	}
	return Extract(c)
}
