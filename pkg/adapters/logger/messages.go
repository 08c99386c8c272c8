package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Rendering %s (%s frame, %s background)...": "%s をレンダリング中 (%s フレーム, %s 背景)...",
		"Output saved to %s":                        "出力を %s に保存しました",
		"Render completed: %dx%d":                   "レンダリング完了: %dx%d",
		"Interrupted, shutting down...":             "中断されました。シャットダウン中...",
		"Summary saved to %s":                       "サマリーを %s に保存しました",

		// Layout stage
		"Layout calculated: %dx%d canvas, content %dx%d at %d,%d": "レイアウト計算完了: %dx%d キャンバス, コンテンツ %dx%d (%d,%d)",

		// Render stage
		"Painting %s background":   "%s 背景を描画中",
		"Drawing %s frame":         "%s フレームを描画中",
		"Drawing %d text overlays": "%d 個のテキストを描画中",

		// Canvas pool
		"Allocated surface %s (%s), %d pooled": "サーフェス %s (%s) を確保しました。プール数 %d",
		"Reusing surface %s (%s)":              "サーフェス %s (%s) を再利用します",
		"Evicting surface %s (%s)":             "サーフェス %s (%s) を破棄します",
		"Swept %d idle surfaces":               "アイドル状態のサーフェスを %d 個破棄しました",

		// Editor store
		"Geometry recomputed: %dx%d": "ジオメトリ再計算: %dx%d",

		// Warnings
		"Mesh CSS has no radial-gradient clauses, using default mesh": "メッシュCSSに radial-gradient がありません。デフォルトのメッシュを使用します",
		"Logo pattern has no logo image, painting gradient only":      "ロゴ画像がないため、グラデーションのみ描画します",
		"Unknown background %q, using solid fill":                     "不明な背景 %q のため、単色で塗りつぶします",
		"Font face unavailable: %s":                                   "フォントを読み込めません: %s",
		"Failed to save debug layer %s: %s":                           "デバッグレイヤー %s の保存に失敗しました: %s",
		"Failed to mask text overlay %s: %s":                          "テキスト %s のマスク作成に失敗しました: %s",

		// Errors
		"Failed to read image: %s":    "画像の読み込みに失敗しました: %s",
		"Failed to render: %s":        "レンダリングに失敗しました: %s",
		"Failed to write output: %s":  "出力の書き込みに失敗しました: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
