package av

import "errors"

// ベクター構築関連エラー
var (
	// ErrBothVariants はDigestとAKAの両方が設定されている場合のエラー
	ErrBothVariants = errors.New("authentication vector has both digest and aka variants")

	// ErrNoVariant はどちらのバリアントも設定されていない場合のエラー
	ErrNoVariant = errors.New("authentication vector has no variant")
)
