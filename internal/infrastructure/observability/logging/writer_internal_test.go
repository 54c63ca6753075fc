// Package logging provides internal tests for writer.go.
// It tests internal implementation details using white-box testing.
package logging

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodflow/start/internal/domain/config"
)

// Test_openLogFile tests the openLogFile helper function.
//
// Params:
//   - t: the testing context.
func Test_openLogFile(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// createDir indicates whether to create the directory.
		createDir bool
		// exists indicates whether the file exists (empty) before opening.
		exists bool
		// wantErr indicates whether an error is expected.
		wantErr bool
	}{
		{
			name:      "opens_new_file",
			createDir: true,
			wantErr:   false,
		},
		{
			name:      "opens_existing_file",
			createDir: true,
			exists:    true,
			wantErr:   false,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")
			if tt.exists {
				require.NoError(t, os.WriteFile(path, nil, filePermissions))
			}

			f, size, err := openLogFile(path)

			// Check error expectation.
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, f)
				// Return early.
				return
			}

			require.NoError(t, err)
			require.NotNil(t, f)
			defer func() { _ = f.Close() }()

			assert.Equal(t, int64(0), size)
		})
	}
}

// Test_openLogFileExistingContent tests openLogFile with existing content.
//
// Params:
//   - t: the testing context.
func Test_openLogFileExistingContent(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// content is the existing content.
		content string
		// expectedSize is the expected size.
		expectedSize int64
	}{
		{
			name:         "empty_file",
			content:      "",
			expectedSize: 0,
		},
		{
			name:         "file_with_content",
			content:      "existing content",
			expectedSize: 16,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create file with content.
			if tt.content != "" {
				err := os.WriteFile(path, []byte(tt.content), filePermissions)
				require.NoError(t, err)
			}

			f, size, err := openLogFile(path)
			require.NoError(t, err)
			require.NotNil(t, f)
			defer func() { _ = f.Close() }()

			assert.Equal(t, tt.expectedSize, size)
		})
	}
}

// Test_parseMaxSize tests the parseMaxSize helper function.
//
// Params:
//   - t: the testing context.
func Test_parseMaxSize(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// input is the size string to parse.
		input string
		// expected is the expected size in bytes.
		expected int64
	}{
		{
			name:     "megabytes",
			input:    "1MB",
			expected: 1 * 1024 * 1024,
		},
		{
			name:     "bytes",
			input:    "100",
			expected: 100,
		},
		{
			name:     "invalid_returns_default",
			input:    "invalid",
			expected: defaultMaxSize,
		},
		{
			name:     "empty_returns_default",
			input:    "",
			expected: defaultMaxSize,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			result := parseMaxSize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Test_Writer_rotateFiles tests the rotateFiles method.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotateFiles(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// maxFiles is the max number of backup files.
		maxFiles int
		// existingBackups is the number of existing backup files.
		existingBackups int
	}{
		{
			name:            "no_existing_backups",
			maxFiles:        3,
			existingBackups: 0,
		},
		{
			name:            "with_existing_backups",
			maxFiles:        3,
			existingBackups: 2,
		},
		{
			name:            "at_max_backups",
			maxFiles:        3,
			existingBackups: 3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create the main log file.
			err := os.WriteFile(path, []byte("main log content"), filePermissions)
			require.NoError(t, err)

			// Create existing backup files.
			backupContent := []byte("backup content")
			for i := 1; i <= tt.existingBackups; i++ {
				backupPath := path + "." + strconv.Itoa(i)
				err := os.WriteFile(backupPath, backupContent, filePermissions)
				require.NoError(t, err)
			}

			w := &Writer{
				path:     path,
				maxFiles: tt.maxFiles,
			}

			err = w.rotateFiles()
			assert.NoError(t, err)

			// Verify main log was renamed to .1.
			backupPath := path + ".1"
			_, err = os.Stat(backupPath)
			assert.NoError(t, err)
		})
	}
}

// Test_Writer_rotate tests the rotate method.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotate(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// initialContent is the initial content to write.
		initialContent string
		// maxSize is the max file size.
		maxSize int64
		// maxFiles is the max backup files.
		maxFiles int
	}{
		{
			name:           "rotate_creates_backup",
			initialContent: "initial content",
			maxSize:        100,
			maxFiles:       3,
		},
		{
			name:           "rotate_empty_file",
			initialContent: "",
			maxSize:        100,
			maxFiles:       3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create writer.
			f, size, err := openLogFile(path)
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				path:     path,
				maxSize:  tt.maxSize,
				maxFiles: tt.maxFiles,
				size:     size,
			}

			// Write initial content if provided.
			if tt.initialContent != "" {
				_, err := f.WriteString(tt.initialContent)
				require.NoError(t, err)
			}

			// Close writer file for rotation.
			err = f.Close()
			require.NoError(t, err)

			// Create new file to rotate from.
			f2, _, err := openLogFile(path)
			require.NoError(t, err)
			w.file = f2

			w.writer = bufio.NewWriter(f2)

			err = w.rotate()
			require.NoError(t, err)
			defer func() { _ = w.file.Close() }()

			// The previous log file is now the first backup.
			_, err = os.Stat(path + ".1")
			assert.NoError(t, err)
		})
	}
}

// Test_Writer_openNewFile tests the openNewFile method.
//
// Params:
//   - t: the testing context.
func Test_Writer_openNewFile(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// createDir indicates whether to create the directory.
		createDir bool
		// wantErr indicates whether an error is expected.
		wantErr bool
	}{
		{
			name:      "opens_new_file",
			createDir: true,
			wantErr:   false,
		},
		{
			name:      "fails_without_directory",
			createDir: false,
			wantErr:   true,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var path string

			// Setup path based on directory creation.
			if tt.createDir {
				path = filepath.Join(tmpDir, "test.log")
			} else {
				path = filepath.Join(tmpDir, "nonexistent", "test.log")
			}

			w := &Writer{path: path}

			f, err := w.openNewFile()

			// Check error expectation.
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, f)
				// Return early.
				return
			}

			require.NoError(t, err)
			require.NotNil(t, f)
			defer func() { _ = f.Close() }()
		})
	}
}

// Test_Writer_rotateFiles_renameError tests rotateFiles when main file rename fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotateFiles_renameError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// maxFiles is the max number of backup files.
		maxFiles int
	}{
		{
			name:     "rename_fails_when_target_is_nonempty_dir",
			maxFiles: 3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create the main log file.
			err := os.WriteFile(path, []byte("main log content"), filePermissions)
			require.NoError(t, err)

			// Create directories with content at all backup positions to prevent shifting.
			// This ensures the final rename will fail.
			for i := 1; i <= tt.maxFiles; i++ {
				backupPath := path + "." + strconv.Itoa(i)
				err = os.MkdirAll(backupPath, dirPermissions)
				require.NoError(t, err)
				err = os.WriteFile(filepath.Join(backupPath, "blocker"), []byte("x"), filePermissions)
				require.NoError(t, err)
			}

			w := &Writer{
				path:     path,
				maxFiles: tt.maxFiles,
			}

			// This should fail because we cannot rename file to non-empty directory.
			err = w.rotateFiles()
			// The rename will fail with "file exists" on Linux.
			assert.Error(t, err)
		})
	}
}

// Test_Writer_rotate_full tests the complete rotate method.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotate_full(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// maxFiles is the max number of backup files.
		maxFiles int
	}{
		{
			name:     "successful_rotation",
			maxFiles: 3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				writer:   bufio.NewWriter(f),
				path:     path,
				maxSize:  100,
				maxFiles: tt.maxFiles,
				size:     0,
			}

			// Write some content.
			_, err = w.Write([]byte("test content"))
			require.NoError(t, err)

			// Rotate should succeed.
			err = w.rotate()
			assert.NoError(t, err)

			// Verify backup was created.
			backupPath := path + ".1"
			_, err = os.Stat(backupPath)
			assert.NoError(t, err)

			// Cleanup.
			_ = w.Close()
		})
	}
}

// Test_Writer_rotate_rotateFilesError tests rotate when rotateFiles fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotate_rotateFilesError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// maxFiles is the max number of backup files.
		maxFiles int
	}{
		{
			name:     "rotate_fails_on_rotateFiles",
			maxFiles: 3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create directories with content at all backup positions to cause rename error.
			for i := 1; i <= tt.maxFiles; i++ {
				backupPath := path + "." + strconv.Itoa(i)
				err := os.MkdirAll(backupPath, dirPermissions)
				require.NoError(t, err)
				err = os.WriteFile(filepath.Join(backupPath, "blocker"), []byte("x"), filePermissions)
				require.NoError(t, err)
			}

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				writer:   bufio.NewWriter(f),
				path:     path,
				maxSize:  100,
				maxFiles: tt.maxFiles,
				size:     0,
			}

			// Rotate should fail because rotateFiles fails.
			err = w.rotate()
			assert.Error(t, err)
		})
	}
}

// Test_Writer_rotate_openNewFileError tests rotate when openNewFile fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotate_openNewFileError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// maxFiles is the max number of backup files.
		maxFiles int
	}{
		{
			name:     "rotate_fails_on_openNewFile",
			maxFiles: 3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				writer:   bufio.NewWriter(f),
				path:     path,
				maxSize:  100,
				maxFiles: tt.maxFiles,
				size:     0,
			}

			// Remove write permissions from directory to cause openNewFile to fail.
			err = os.Chmod(tmpDir, 0o000)
			require.NoError(t, err)

			// Restore permissions after test.
			defer func() { _ = os.Chmod(tmpDir, dirPermissions) }()

			// Rotate should fail because openNewFile fails.
			err = w.rotate()
			assert.Error(t, err)
		})
	}
}

// Test_Writer_Write_rotationError tests Write when rotation fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_Write_rotationError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
		// maxSize is the max file size.
		maxSize int64
		// maxFiles is the max number of backup files.
		maxFiles int
	}{
		{
			name:     "write_fails_on_rotation",
			maxSize:  10,
			maxFiles: 3,
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create directories with content at all backup positions to cause rename error.
			for i := 1; i <= tt.maxFiles; i++ {
				backupPath := path + "." + strconv.Itoa(i)
				err := os.MkdirAll(backupPath, dirPermissions)
				require.NoError(t, err)
				err = os.WriteFile(filepath.Join(backupPath, "blocker"), []byte("x"), filePermissions)
				require.NoError(t, err)
			}

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				writer:   bufio.NewWriter(f),
				path:     path,
				maxSize:  tt.maxSize,
				maxFiles: tt.maxFiles,
				size:     0,
			}

			// First write should succeed.
			_, err = w.Write([]byte("short"))
			require.NoError(t, err)

			// Second write should trigger rotation and fail.
			n, err := w.Write([]byte("this is a longer message that triggers rotation"))
			assert.Error(t, err)
			assert.Equal(t, 0, n)
		})
	}
}

// Test_openLogFile_statError tests openLogFile when stat fails after opening.
//
// Params:
//   - t: the testing context.
func Test_openLogFile_statError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "stat_fails",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Save the original openFileFunc.
			originalFunc := openFileFunc
			defer func() { openFileFunc = originalFunc }()

			// Replace openFileFunc with one that returns a file, but immediately closes it.
			openFileFunc = func(name string, flag int, perm os.FileMode) (*os.File, error) {
				f, err := os.OpenFile(name, flag, perm)
				if err != nil {
					return nil, err
				}
				// Close the file to cause stat to fail.
				_ = f.Close()
				return f, nil
			}

			f, size, err := openLogFile(path)
			// Stat should fail because file is closed.
			assert.Error(t, err)
			assert.Nil(t, f)
			assert.Equal(t, int64(0), size)
		})
	}
}

// Test_Writer_rotate_flushError tests rotate when flush fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotate_flushError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "rotate_fails_on_flush",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			// Write some data to the bufio.Writer.
			bw := bufio.NewWriter(f)
			_, err = bw.WriteString("buffered content")
			require.NoError(t, err)

			// Close the underlying file to cause flush to fail.
			err = f.Close()
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				writer:   bw,
				path:     path,
				maxSize:  100,
				maxFiles: 3,
				size:     0,
			}

			// Rotate should fail because flush fails on closed file.
			err = w.rotate()
			assert.Error(t, err)
		})
	}
}

// Test_Writer_rotate_closeError tests rotate when file close fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_rotate_closeError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "rotate_fails_on_close",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			// The buffer stays empty, so rotate's flush succeeds without
			// touching the file, and its close then fails on the closed file.

			w := &Writer{
				file:     f,
				writer:   bufio.NewWriter(f),
				path:     path,
				maxSize:  100,
				maxFiles: 3,
				size:     0,
			}

			// Close the file underneath the writer.
			err = f.Close()
			require.NoError(t, err)

			// Flush of the empty buffer succeeds; closing the file fails.
			err = w.rotate()
			assert.Error(t, err)
		})
	}
}

// Test_Writer_Close_flushError tests Close when flush fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_Close_flushError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "close_fails_on_flush",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			// Write some data to the bufio.Writer.
			bw := bufio.NewWriter(f)
			_, err = bw.WriteString("buffered content")
			require.NoError(t, err)

			// Close the underlying file to cause flush to fail.
			err = f.Close()
			require.NoError(t, err)

			w := &Writer{
				file:   f,
				writer: bw,
				path:   path,
			}

			// Close should fail because flush fails on closed file.
			err = w.Close()
			assert.Error(t, err)
		})
	}
}

// Test_Writer_Sync_flushError tests Sync when flush fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_Sync_flushError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "sync_fails_on_flush",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			// Write some data to the bufio.Writer.
			bw := bufio.NewWriter(f)
			_, err = bw.WriteString("buffered content")
			require.NoError(t, err)

			// Close the underlying file to cause flush to fail.
			err = f.Close()
			require.NoError(t, err)

			w := &Writer{
				file:   f,
				writer: bw,
				path:   path,
			}

			// Sync should fail because flush fails on closed file.
			err = w.Sync()
			assert.Error(t, err)
		})
	}
}

// Test_Writer_Write_writeError tests Write when write fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_Write_writeError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "write_fails_on_closed_file",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			// Use a tiny buffer to force immediate underlying writes.
			bw := bufio.NewWriterSize(f, 1)

			w := &Writer{
				file:     f,
				writer:   bw,
				path:     path,
				maxSize:  0, // No rotation.
				maxFiles: 3,
				size:     0,
			}

			// Close the underlying file to cause write to fail.
			err = f.Close()
			require.NoError(t, err)

			// Write should fail because file is closed.
			n, err := w.Write([]byte("test content"))
			assert.Error(t, err)
			// With small buffer, write fails immediately.
			assert.LessOrEqual(t, n, len("test content"))
		})
	}
}

// Test_Writer_Write_flushError tests Write when flush fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_Write_flushError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "write_fails_on_flush",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			w := &Writer{
				file:     f,
				writer:   bufio.NewWriter(f),
				path:     path,
				maxSize:  0, // No rotation.
				maxFiles: 3,
				size:     0,
			}

			// Write some initial content successfully.
			_, err = w.Write([]byte("initial"))
			require.NoError(t, err)

			// Close the underlying file to cause flush to fail.
			err = f.Close()
			require.NoError(t, err)

			// Write should fail during flush.
			n, err := w.Write([]byte("more content"))
			assert.Error(t, err)
			assert.LessOrEqual(t, n, len("more content"))
		})
	}
}

// Test_NewWriterFromConfig_openLogFileError tests NewWriterFromConfig when openLogFile fails.
//
// Params:
//   - t: the testing context.
func Test_NewWriterFromConfig_openLogFileError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "openLogFile_fails",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			// Create a directory where the file should be - this will cause OpenFile to fail.
			path := filepath.Join(tmpDir, "test.log")
			err := os.MkdirAll(path, dirPermissions)
			require.NoError(t, err)

			cfg := &testWriterConfig{
				filePath: "test.log",
				rotation: testRotationConfig{
					maxSize:  "1MB",
					maxFiles: 3,
				},
			}

			w, err := NewWriterFromConfig(path, cfg)
			assert.Error(t, err)
			assert.Nil(t, w)
		})
	}
}

// Test_NewWriter_openLogFileError tests NewWriter when openLogFile fails.
//
// Params:
//   - t: the testing context.
func Test_NewWriter_openLogFileError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "openLogFile_fails",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			// Create a directory where the file should be - this will cause OpenFile to fail.
			path := filepath.Join(tmpDir, "test.log")
			err := os.MkdirAll(path, dirPermissions)
			require.NoError(t, err)

			cfg := &testWriterConfig{
				filePath: "test.log",
				rotation: testRotationConfig{
					maxSize:  "1MB",
					maxFiles: 3,
				},
			}

			w, err := NewWriter(path, cfg)
			assert.Error(t, err)
			assert.Nil(t, w)
		})
	}
}

// testRotationConfig is a test implementation of rotation config.
type testRotationConfig struct {
	maxSize  string
	maxFiles int
	compress bool
}

// testWriterConfig is a test implementation of writerConfig.
type testWriterConfig struct {
	filePath        string
	timestampFormat string
	rotation        testRotationConfig
}

// File returns the file path.
func (c *testWriterConfig) File() string {
	return c.filePath
}

// TimestampFormat returns the timestamp format.
func (c *testWriterConfig) TimestampFormat() string {
	return c.timestampFormat
}

// Rotation returns the rotation configuration.
func (c *testWriterConfig) Rotation() config.RotationConfig {
	return config.RotationConfig{
		MaxSize:  c.rotation.maxSize,
		MaxFiles: c.rotation.maxFiles,
	}
}

// Test_Writer_Write_timestampError tests Write when timestamp write fails.
//
// Params:
//   - t: the testing context.
func Test_Writer_Write_timestampError(t *testing.T) {
	tests := []struct {
		// name is the test case name.
		name string
	}{
		{
			name: "write_fails_on_timestamp",
		},
	}

	// Iterate through all test cases.
	for _, tt := range tests {
		// Run each test case as a subtest.
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "test.log")

			// Create a file for the writer.
			f, err := os.OpenFile(path, logFileFlags, filePermissions)
			require.NoError(t, err)

			// Use a very small buffer to force immediate write.
			bw := bufio.NewWriterSize(f, 1)

			w := &Writer{
				file:            f,
				writer:          bw,
				path:            path,
				maxSize:         0, // No rotation.
				maxFiles:        3,
				size:            0,
				timestampFormat: FormatISO8601,
				addTimestamp:    true,
			}

			// Close the underlying file to cause timestamp write to fail.
			err = f.Close()
			require.NoError(t, err)

			// Write should fail during timestamp write.
			n, err := w.Write([]byte("test content"))
			assert.Error(t, err)
			assert.Equal(t, 0, n)
		})
	}
}
