package pkg

import (
	"fmt"
	"io"
	"os"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// OpenInput 打开已存在的输入文件
func OpenInput(filePath string) (io.ReadCloser, error) {
	exist, err := CheckFileExist(filePath)
	if err != nil {
		return nil, fmt.Errorf("check file exist: %w", err)
	}
	if !exist {
		return nil, fmt.Errorf("input file %q not exist", filePath)
	}
	return os.Open(filePath)
}

// CreateOutput 创建输出文件
func CreateOutput(filePath string) (io.WriteCloser, error) {
	return os.Create(filePath)
}
