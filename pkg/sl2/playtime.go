package sl2

import "fmt"

// FormatPlaytime は経過秒数を HH:MM:SS 形式に変換します。
// 時間は24で折り返しません (90000秒 -> "25:00:00")。
func FormatPlaytime(totalSeconds uint32) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
