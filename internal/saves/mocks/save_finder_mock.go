package mocks

// MockSaveFileFinder はSaveFileFinderのモック実装です
type MockSaveFileFinder struct {
	FoundFiles []string
	Error      error
	SearchedIn []string
}

// Find はモック実装です
func (m *MockSaveFileFinder) Find(dir string) ([]string, error) {
	m.SearchedIn = append(m.SearchedIn, dir)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.FoundFiles, nil
}
