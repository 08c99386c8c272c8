// Package main provides localization for the mockshot CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":           "出力先",
		"Layout and Frame": "レイアウトとフレーム",
		"Background":       "背景",
		"Shadow and Text":  "影とテキスト",
		"Encoding":         "エンコード",
		"Debug":            "デバッグ",
		"Logging":          "ログ",

		// Root command
		"Compose screenshots into styled mockup images":                                      "スクリーンショットを装飾したモックアップ画像に合成",
		"mockshot places images on styled backgrounds with device frames, shadows and text.": "mockshotは画像を背景の上に配置し、デバイスフレーム、影、テキストを合成します。",

		// Render command
		"Render images into styled mockups":                                             "画像をモックアップとしてレンダリング",
		"Render one or more images with a background, frame, shadow and text overlays.": "1つ以上の画像を背景、フレーム、影、テキストとともにレンダリングします。",

		// Version command
		"Show version information":         "バージョン情報を表示",
		"Display the version of mockshot.": "mockshotのバージョンを表示します。",
		"mockshot version %s":              "mockshot バージョン %s",

		// Output flags
		"Output file path (a directory when rendering several images)": "出力ファイルパス（複数画像の場合はディレクトリ）",
		"YAML style configuration file":                                "YAMLスタイル設定ファイル",
		"Output execution summary to file (Markdown format)":           "実行サマリーをファイルに出力（Markdown形式）",

		// Layout flags
		"Frame (none, browser, macos, windows, iphone, android)": "フレーム（none, browser, macos, windows, iphone, android）",
		"Padding around the content in pixels (default: 64)":     "コンテンツ周囲の余白（ピクセル、デフォルト: 64）",
		"Image scale factor (default: 1)":                        "画像の拡大率（デフォルト: 1）",
		"Corner radius in pixels (default: 12)":                  "角の半径（ピクセル、デフォルト: 12）",
		"Content rotation in degrees":                            "コンテンツの回転角度（度）",
		"Fixed output width (requires --height)":                 "固定出力幅（--height が必要）",
		"Fixed output height (requires --width)":                 "固定出力高さ（--width が必要）",

		// Background flags
		"Background (solid, gradient, mesh, textPattern, waveSplit, logoPattern, transparent)": "背景（solid, gradient, mesh, textPattern, waveSplit, logoPattern, transparent）",
		"Solid background color (hex, e.g., #ffffff)":                                          "単色背景の色（16進数、例: #ffffff）",
		"Gradient start color (hex)":                                                           "グラデーションの開始色（16進数）",
		"Gradient end color (hex)":                                                             "グラデーションの終了色（16進数）",
		"Gradient angle in degrees (default: 135)":                                             "グラデーションの角度（度、デフォルト: 135）",
		"Mesh radial-gradient CSS":                                                             "メッシュ背景の radial-gradient CSS",
		"Text for the textPattern background":                                                  "textPattern 背景のテキスト",
		"Logo image for the logoPattern background":                                            "logoPattern 背景のロゴ画像",

		// Shadow and text flags
		"Shadow blur radius in pixels (default: 20)":       "影のぼかし半径（ピクセル、デフォルト: 20）",
		"Shadow opacity (0-100, default: 30)":              "影の不透明度（0-100、デフォルト: 30）",
		"Text overlay; repeat to stack lines from the top": "テキストオーバーレイ（繰り返すと上から積み重ね）",
		"Register a TrueType font as family[:bold]=path":   "TrueTypeフォントを family[:bold]=path 形式で登録",

		// Encoding flags
		"Output format (png, jpeg, webp; default: from extension)": "出力形式（png, jpeg, webp、デフォルト: 拡張子から判定）",
		"JPEG/WebP quality (1-100, default: 90)":                   "JPEG/WebPの品質（1-100、デフォルト: 90）",
		"Number of images rendered concurrently (default: 4)":      "同時にレンダリングする画像数（デフォルト: 4）",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Error messages
		"Image argument is required": "画像の引数が必要です",

		// Summary content
		"Render Summary":     "レンダリングサマリー",
		"Generated":          "生成日時",
		"Settings":           "設定",
		"Results":            "実行結果",
		"Item":               "項目",
		"Value":              "値",
		"Frame":              "フレーム",
		"Padding":            "余白",
		"Zoom":               "拡大率",
		"Border Radius":      "角の半径",
		"Rotation":           "回転",
		"Output Size":        "出力サイズ",
		"Derived":            "自動",
		"Shadow":             "影",
		"Text Overlays":      "テキスト数",
		"Format":             "形式",
		"Workers":            "並列数",
		"None":               "なし",
		"No images rendered": "レンダリングされた画像はありません",
		"Input":              "入力",
		"Canvas Size":        "キャンバスサイズ",
		"File Size":          "ファイルサイズ",
		"Total Size":         "合計サイズ",
		"Generated by":       "生成:",
	})
}
