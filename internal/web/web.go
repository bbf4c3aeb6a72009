// File: internal/web/web.go
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// 頁面在資產根目錄下的路徑
const (
	LoginPage = "views/login.html"
	AdminPage = "public/ADMIN.html"
	UserPage  = "public/USUARIO.html"
)

//go:embed views public
var embedded embed.FS

// Assets 回傳頁面資產；dir 為空時使用內嵌檔案，否則讀取磁碟目錄
// 磁碟目錄必須包含三個頁面
func Assets(dir string) (fs.FS, error) {
	if dir == "" {
		return embedded, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("無法讀取 PUBLIC_DIR: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("PUBLIC_DIR %s 不是目錄", dir)
	}
	fsys := os.DirFS(dir)
	if err := Check(fsys); err != nil {
		return nil, err
	}
	return fsys, nil
}

// Check 確認三個頁面皆存在
func Check(fsys fs.FS) error {
	for _, p := range []string{LoginPage, AdminPage, UserPage} {
		if _, err := fs.Stat(fsys, p); err != nil {
			return fmt.Errorf("缺少頁面 %s: %w", p, err)
		}
	}
	return nil
}

// Public 靜態檔案子目錄，原樣提供
func Public(fsys fs.FS) (fs.FS, error) {
	return fs.Sub(fsys, "public")
}
