// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import "errors"

var (
	// ErrNotFound はリソースが存在しない、または呼び出しユーザーの所有でない場合のエラーです。
	// 他ユーザーのリソースの存在を開示しないため、両者を区別しません。
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateEmail はメールアドレスが既に登録されている場合のエラーです。
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound はユーザーが見つからない場合のエラーです。
	ErrUserNotFound = errors.New("user not found")
)
