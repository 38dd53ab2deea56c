package sl2

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// DS3ChecksumPrefix は DARK SOULS III の復号済みデータ先頭にあるチェックサム (16) とパディング (4) の長さ
const DS3ChecksumPrefix = 16 + 4

// Profile は作品ごとのセーブデータのレイアウト定数を表します
type Profile struct {
	Encrypted            bool
	CharacterNameMaxLen  int // UTF-16 のコードユニット数 (終端を含まない)
	CharacterSlotsCount  int
	FileIndex            int
	SlotDataOffset       int
	SlotLength           int
	SlotsOccupancyOffset int
	ChecksumPrefixLength int // スロットテーブルの前に置かれるバイト数
}

// NameSectionSize はスロット内の名前領域のサイズ (終端の2バイトを含む)
func (p Profile) NameSectionSize() int {
	return p.CharacterNameMaxLen*2 + 2
}

// Validate はプロファイルの値を検証します
func (p Profile) Validate() error {
	switch {
	case p.CharacterNameMaxLen < 0:
		return fmt.Errorf("%w: name max length %d", ErrInvalidProfile, p.CharacterNameMaxLen)
	case p.CharacterSlotsCount <= 0:
		return fmt.Errorf("%w: slots count %d", ErrInvalidProfile, p.CharacterSlotsCount)
	case p.SlotLength <= 0:
		return fmt.Errorf("%w: slot length %d", ErrInvalidProfile, p.SlotLength)
	case p.FileIndex < 0:
		return fmt.Errorf("%w: file index %d", ErrInvalidProfile, p.FileIndex)
	case p.SlotDataOffset < 0, p.SlotsOccupancyOffset < 0, p.ChecksumPrefixLength < 0:
		return fmt.Errorf("%w: negative offset", ErrInvalidProfile)
	}

	// コンテナ内の位置とサイズは u32 で表されるため、それを超える値は受け付けない
	limits := []struct {
		name  string
		value int
	}{
		{"name max length", p.CharacterNameMaxLen},
		{"slots count", p.CharacterSlotsCount},
		{"file index", p.FileIndex},
		{"slot data offset", p.SlotDataOffset},
		{"slot length", p.SlotLength},
		{"occupancy offset", p.SlotsOccupancyOffset},
		{"checksum prefix", p.ChecksumPrefixLength},
	}
	for _, l := range limits {
		if int64(l.value) > math.MaxUint32 {
			return fmt.Errorf("%w: %s %d exceeds %d", ErrInvalidProfile, l.name, l.value, uint32(math.MaxUint32))
		}
	}
	return nil
}

// Registry はプロファイルキーから Profile を引く不変のテーブルです
type Registry struct {
	profiles map[string]Profile
}

// NewRegistry は profiles を検証・複製して Registry を作成します
func NewRegistry(profiles map[string]Profile) (*Registry, error) {
	for key, p := range profiles {
		if key == "" {
			return nil, fmt.Errorf("%w: empty key", ErrInvalidProfile)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", key, err)
		}
	}
	return &Registry{profiles: maps.Clone(profiles)}, nil
}

// DefaultRegistry は組み込みの er / ds3 プロファイルを持つ Registry を返します
func DefaultRegistry() *Registry {
	return &Registry{profiles: map[string]Profile{
		"er": {
			Encrypted:            false,
			CharacterNameMaxLen:  16,
			CharacterSlotsCount:  10,
			FileIndex:            10,
			SlotDataOffset:       6494,
			SlotLength:           588,
			SlotsOccupancyOffset: 6484,
			ChecksumPrefixLength: 0,
		},
		"ds3": {
			Encrypted:            true,
			CharacterNameMaxLen:  16,
			CharacterSlotsCount:  10,
			FileIndex:            10,
			SlotDataOffset:       4254,
			SlotLength:           554,
			SlotsOccupancyOffset: 4244,
			ChecksumPrefixLength: DS3ChecksumPrefix,
		},
	}}
}

// Lookup はキーに対応する Profile を返します
func (r *Registry) Lookup(key string) (Profile, error) {
	p, ok := r.profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, key)
	}
	return p, nil
}

// Keys は登録済みのキーを昇順で返します
func (r *Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.profiles))
}

// With は key に p を追加 (または上書き) した新しい Registry を返します
func (r *Registry) With(key string, p Profile) (*Registry, error) {
	profiles := maps.Clone(r.profiles)
	if profiles == nil {
		profiles = make(map[string]Profile)
	}
	profiles[key] = p
	return NewRegistry(profiles)
}
