package sl2

import "fmt"

// Container はプロファイルに従って取り出したキャラクターデータのエントリを表します
type Container struct {
	ProfileKey string
	Profile    Profile
	Entry      Entry
	IV         []byte
	Body       []byte // 暗号化プロファイルでは復号済み、平文プロファイルでは raw の一部
}

// Parser は BND4 コンテナからキャラクターデータのエントリを取り出します
type Parser struct {
	registry  *Registry
	decryptor *Decryptor
}

// NewParser は新しい Parser を作成します
func NewParser(registry *Registry) *Parser {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Parser{
		registry:  registry,
		decryptor: NewDecryptor(),
	}
}

// Registry はパーサーが参照する Registry を返します
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse は raw からプロファイル profileKey のエントリを読み込み、必要なら復号します。
// raw は変更されません。
func (p *Parser) Parse(raw []byte, profileKey string) (*Container, error) {
	profile, err := p.registry.Lookup(profileKey)
	if err != nil {
		return nil, err
	}

	entry, err := ReadEntry(raw, profile.FileIndex)
	if err != nil {
		return nil, err
	}

	iv, body, err := entry.Data(raw)
	if err != nil {
		return nil, err
	}

	if profile.Encrypted {
		body, err = p.decryptor.Decrypt(body, iv)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", entry.Index, entry.Name, err)
		}
	}

	return &Container{
		ProfileKey: profileKey,
		Profile:    profile,
		Entry:      entry,
		IV:         iv,
		Body:       body,
	}, nil
}
