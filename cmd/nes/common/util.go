package common

import (
    "os"
    "io"
    "fmt"
    "strings"
    "crypto/sha256"
    "path/filepath"
)

func FileExists(path string) bool {
    info, err := os.Stat(path)
    if os.IsNotExist(err) {
        return false
    }

    // return true if exist and is not a directory
    return !info.IsDir()
}

/* return the sha256 hash of a file given by the path */
func GetSha256(path string) (string, error){
    hash := sha256.New()
    data, err := os.Open(path)
    if err != nil {
        return "", err
    }
    defer data.Close()
    _, err = io.Copy(hash, data)
    if err != nil {
        return "", err
    }
    return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

func IsNesFile(path string) bool {
    return strings.ToLower(filepath.Ext(path)) == ".nes"
}

/* files are passed through as is, directories are walked for .nes files */
func FindRoms(paths []string) ([]string, error) {
    var out []string
    for _, path := range paths {
        info, err := os.Stat(path)
        if err != nil {
            return nil, err
        }

        if !info.IsDir() {
            out = append(out, path)
            continue
        }

        err = filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
            if err != nil {
                return err
            }

            if !info.IsDir() && IsNesFile(path) {
                out = append(out, path)
            }

            return nil
        })

        if err != nil {
            return nil, err
        }
    }

    return out, nil
}
