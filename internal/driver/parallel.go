package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
)

// Event reports per-file progress during a directory check, consumed by
// the terminal UI.
type Event struct {
	Path     string
	Index    int
	Total    int
	Findings int
	Cached   bool
	Err      error
}

// DirOptions configures a directory check.
type DirOptions struct {
	MaxDiagnostics int
	Jobs           int      // 0 means GOMAXPROCS
	Exclude        []string // glob patterns against relative paths
	Cache          *DiskCache
	Events         chan<- Event // optional, never closed by the driver
}

// FileResult is the outcome of checking one file in directory mode.
type FileResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Cached bool
}

// ListPyFiles returns the sorted relative paths of all *.py files under
// dir, minus those matching an exclude pattern.
func ListPyFiles(dir string, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".py") {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if excluded(rel, exclude) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func excluded(rel string, patterns []string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
		// Directory prefix exclusion: "vendor" excludes vendor/a/b.py.
		if strings.HasPrefix(rel, strings.TrimSuffix(pat, "/")+"/") {
			return true
		}
	}
	return false
}

// CheckDir checks every *.py file under dir in parallel. Results are in
// the same order as the sorted file list; indexes are goroutine-unique
// so no locking is needed around the results slice.
func CheckDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []FileResult, error) {
	files, err := ListPyFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}
	return CheckFiles(ctx, dir, files, opts)
}

// CheckFiles checks an explicit file list in parallel.
func CheckFiles(ctx context.Context, baseDir string, files []string, opts DirOptions) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSetWithBase(baseDir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially: FileSet is not safe for concurrent Add.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: path, Bag: bag}
				emit(opts.Events, Event{Path: path, Index: i, Total: len(files), Err: loadErr})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			cached := false
			if opts.Cache != nil && restoreFromCache(opts.Cache, file, bag) {
				cached = true
			} else {
				analyzeFile(file, bag, opts.MaxDiagnostics)
				if opts.Cache != nil {
					storeToCache(opts.Cache, file, bag)
				}
			}

			results[i] = FileResult{
				Path:   path,
				FileID: fileID,
				Bag:    bag,
				Cached: cached,
			}
			emit(opts.Events, Event{
				Path:     path,
				Index:    i,
				Total:    len(files),
				Findings: bag.Len(),
				Cached:   cached,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}

// MergeBags collects all per-file bags into one sorted bag.
func MergeBags(results []FileResult) *diag.Bag {
	total := 0
	for _, r := range results {
		if r.Bag != nil {
			total += r.Bag.Len()
		}
	}
	merged := diag.NewBag(total)
	for _, r := range results {
		if r.Bag != nil {
			merged.Merge(r.Bag)
		}
	}
	merged.Sort()
	return merged
}
