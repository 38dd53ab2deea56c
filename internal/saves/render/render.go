// Package render は読み込み結果を表形式・テキスト・JSONで出力します
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/shiroemons/go-bonfire/internal/saves/config"
	"github.com/shiroemons/go-bonfire/internal/saves/models"
	"github.com/shiroemons/go-bonfire/pkg/sl2"
)

// Resolve は auto を出力先に応じて table または plain に解決します
func Resolve(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return config.FormatTable
		}
	}
	return config.FormatPlain
}

// Results は読み込み結果を出力します。失敗したファイルは JSON 以外では出力しません。
func Results(w io.Writer, format string, results []models.ScanResult) error {
	switch Resolve(format, w) {
	case config.FormatJSON:
		return writeJSON(w, resultsJSON(results))
	case config.FormatTable:
		rows := make([][]string, 0)
		for _, r := range results {
			if r.Failed() {
				continue
			}
			for _, c := range r.Characters {
				rows = append(rows, []string{
					filepath.Base(r.Path),
					r.ProfileKey,
					strconv.Itoa(c.Slot),
					c.Name,
					strconv.FormatUint(uint64(c.Level), 10),
					c.ElapsedFormatted,
				})
			}
		}
		return writeTable(w,
			[]string{"File", "Profile", "Slot", "Name", "Level", "Playtime"},
			rows,
			[]text.Align{text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignLeft, text.AlignRight, text.AlignRight},
		)
	default:
		for _, r := range results {
			if r.Failed() {
				continue
			}
			for _, c := range r.Characters {
				if _, err := fmt.Fprintf(w, "%s\tslot=%d\tname=%q\tlevel=%d\ttime=%s (%ds)\n",
					r.Path, c.Slot, c.Name, c.Level, c.ElapsedFormatted, c.ElapsedSeconds); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Entries はコンテナ内のエントリ一覧を出力します
func Entries(w io.Writer, format string, listing models.EntryListing) error {
	switch Resolve(format, w) {
	case config.FormatJSON:
		return writeJSON(w, entriesJSON(listing))
	case config.FormatTable:
		rows := make([][]string, 0, len(listing.Entries))
		for _, e := range listing.Entries {
			rows = append(rows, []string{
				strconv.Itoa(e.Index),
				e.Name,
				strconv.FormatUint(uint64(e.Size), 10),
				fmt.Sprintf("0x%08X", e.DataOffset),
			})
		}
		return writeTable(w,
			[]string{"Index", "Name", "Size", "Offset"},
			rows,
			[]text.Align{text.AlignRight, text.AlignLeft, text.AlignRight, text.AlignRight},
		)
	default:
		for _, e := range listing.Entries {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t0x%08X\n", e.Index, e.Name, e.Size, e.DataOffset); err != nil {
				return err
			}
		}
		return nil
	}
}

// Profiles は登録済みプロファイルの一覧を出力します
func Profiles(w io.Writer, format string, profiles []models.ProfileInfo) error {
	switch Resolve(format, w) {
	case config.FormatJSON:
		return writeJSON(w, profilesJSON(profiles))
	case config.FormatTable:
		rows := make([][]string, 0, len(profiles))
		for _, info := range profiles {
			p := info.Profile
			rows = append(rows, []string{
				info.Key,
				strconv.FormatBool(p.Encrypted),
				strconv.Itoa(p.CharacterSlotsCount),
				strconv.Itoa(p.FileIndex),
				strconv.Itoa(p.SlotDataOffset),
				strconv.Itoa(p.SlotLength),
				strconv.Itoa(p.SlotsOccupancyOffset),
				strconv.Itoa(p.ChecksumPrefixLength),
			})
		}
		return writeTable(w,
			[]string{"Key", "Encrypted", "Slots", "File Index", "Slot Data", "Slot Length", "Occupancy", "Checksum"},
			rows,
			[]text.Align{text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignRight, text.AlignRight, text.AlignRight, text.AlignRight, text.AlignRight},
		)
	default:
		for _, info := range profiles {
			p := info.Profile
			if _, err := fmt.Fprintf(w, "%s\tencrypted=%t\tslots=%d\tfile_index=%d\tslot_data_offset=%d\tslot_length=%d\toccupancy_offset=%d\tchecksum_prefix=%d\n",
				info.Key, p.Encrypted, p.CharacterSlotsCount, p.FileIndex, p.SlotDataOffset, p.SlotLength, p.SlotsOccupancyOffset, p.ChecksumPrefixLength); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string, aligns []text.Align) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type resultJSON struct {
	Path       string          `json:"path"`
	Profile    string          `json:"profile,omitempty"`
	Entry      string          `json:"entry,omitempty"`
	Characters []sl2.Character `json:"characters"`
	Error      string          `json:"error,omitempty"`
}

func resultsJSON(results []models.ScanResult) []resultJSON {
	out := make([]resultJSON, 0, len(results))
	for _, r := range results {
		item := resultJSON{
			Path:       r.Path,
			Profile:    r.ProfileKey,
			Entry:      r.EntryName,
			Characters: r.Characters,
		}
		if item.Characters == nil {
			item.Characters = []sl2.Character{}
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		out = append(out, item)
	}
	return out
}

type entryJSON struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Size       uint32 `json:"size"`
	DataOffset uint32 `json:"data_offset"`
	NameOffset uint32 `json:"name_offset"`
}

func entriesJSON(listing models.EntryListing) map[string]any {
	entries := make([]entryJSON, 0, len(listing.Entries))
	for _, e := range listing.Entries {
		entries = append(entries, entryJSON{
			Index:      e.Index,
			Name:       e.Name,
			Size:       e.Size,
			DataOffset: e.DataOffset,
			NameOffset: e.NameOffset,
		})
	}
	return map[string]any{"path": listing.Path, "entries": entries}
}

type profileJSON struct {
	Key             string `json:"key"`
	Encrypted       bool   `json:"encrypted"`
	NameMaxLength   int    `json:"name_max_length"`
	Slots           int    `json:"slots"`
	FileIndex       int    `json:"file_index"`
	SlotDataOffset  int    `json:"slot_data_offset"`
	SlotLength      int    `json:"slot_length"`
	OccupancyOffset int    `json:"occupancy_offset"`
	ChecksumPrefix  int    `json:"checksum_prefix"`
}

func profilesJSON(profiles []models.ProfileInfo) []profileJSON {
	out := make([]profileJSON, 0, len(profiles))
	for _, info := range profiles {
		p := info.Profile
		out = append(out, profileJSON{
			Key:             info.Key,
			Encrypted:       p.Encrypted,
			NameMaxLength:   p.CharacterNameMaxLen,
			Slots:           p.CharacterSlotsCount,
			FileIndex:       p.FileIndex,
			SlotDataOffset:  p.SlotDataOffset,
			SlotLength:      p.SlotLength,
			OccupancyOffset: p.SlotsOccupancyOffset,
			ChecksumPrefix:  p.ChecksumPrefixLength,
		})
	}
	return out
}
