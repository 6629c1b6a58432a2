package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFilePath  string
	bucketName      string
	copyFlag        bool
	moveFlag        bool
	poolSize        int
	filterPattern   string
	filterFilenames []string
	excludePatterns []string
	everySeconds    int
	backupAt        string
	debugLogging    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "s3ferry [flags] SRC [DST]",
		Short: "Copy or move files between a local directory and an object-storage bucket",
		Long: `s3ferry copies or moves files between a local directory tree and an
object-storage bucket (S3 or GCS), skipping anything already present at the
destination. Exactly one of SRC or DST must be bucket-qualified as
"bucket:path", or --bucket can be used to qualify the destination.`,
		Args:          cobra.RangeArgs(1, 2),
		RunE:          runSync,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&copyFlag, "cp", false, "Copy files")
	rootCmd.Flags().BoolVar(&moveFlag, "mv", false, "Move files (upload then delete local copies)")
	rootCmd.Flags().StringVar(&bucketName, "bucket", "", "Bucket name, applied to DST when neither endpoint is bucket-qualified")
	rootCmd.Flags().IntVar(&poolSize, "nproc", 0, "Worker pool size (overrides config)")
	rootCmd.Flags().StringVar(&filterPattern, "filter", "", "Single-wildcard filename pattern, e.g. 'cat*.gif'")
	rootCmd.Flags().StringSliceVar(&filterFilenames, "files", nil, "Explicit list of items to transfer")
	rootCmd.Flags().StringSliceVar(&excludePatterns, "exclude", nil, "Regexp exclusion patterns")
	rootCmd.Flags().IntVar(&everySeconds, "every", 0, "Re-run the transfer every N seconds")
	rootCmd.PersistentFlags().StringVar(&configFilePath, "configfile", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Enable debug logging")

	backupCmd := &cobra.Command{
		Use:   "backup SRC",
		Short: "Tar and upload an entire directory as a single object",
		Args:  cobra.ExactArgs(1),
		RunE:  runBackup,
	}
	backupCmd.Flags().StringVar(&bucketName, "bucket", "", "Destination bucket name")
	backupCmd.Flags().StringVar(&backupAt, "at", "", "Run daily at HH:MM instead of once")
	backupCmd.MarkFlagRequired("bucket")
	rootCmd.AddCommand(backupCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	if copyFlag == moveFlag {
		return fmt.Errorf("%w: got cp=%v mv=%v", ErrBadOperation, copyFlag, moveFlag)
	}
	operation := OperationCopy
	if moveFlag {
		operation = OperationMove
	}

	appConfig, engine, _, setupErr := setup()
	if setupErr != nil {
		return setupErr
	}

	src := args[0]
	dst := ""
	if len(args) == 2 {
		dst = args[1]
	} else {
		// default destination: the last path segment of the source
		_, srcPath, qualified := splitBucketPath(src)
		if !qualified {
			srcPath = src
		}
		dst = path.Base(filepath.ToSlash(strings.TrimSuffix(srcPath, "/")))
	}
	if bucketName != "" && strings.Count(src, ":") != 1 && strings.Count(dst, ":") != 1 {
		dst = bucketName + ":" + dst
	}

	job := SyncJob{
		Source:      src,
		Destination: dst,
		Operation:   operation,
		Filenames:   filterFilenames,
		Pattern:     filterPattern,
		Exclude:     append(appConfig.Exclude, excludePatterns...),
	}

	runOnce := func() error {
		resultMap, syncErr := engine.Sync(job)
		if syncErr != nil {
			return syncErr
		}
		failures := resultMap.Failures()
		for _, failure := range failures {
			log.Error(fmt.Sprintf("%s failed for %s: %s", failure.Action, failure.Key, failure.Err))
		}
		if len(failures) > 0 {
			return fmt.Errorf("%d of %d transfers failed", len(failures),
				len(resultMap.Transferred)+len(resultMap.Skipped))
		}
		return nil
	}

	if everySeconds > 0 {
		scheduler := gocron.NewScheduler(time.Local)
		_, scheduleErr := scheduler.Every(everySeconds).Seconds().Do(func() {
			if runErr := runOnce(); runErr != nil {
				log.Error(fmt.Sprintf("Scheduled run failed: %s", runErr))
			}
		})
		if scheduleErr != nil {
			return scheduleErr
		}
		scheduler.StartBlocking()
		return nil
	}

	return runOnce()
}

func runBackup(cmd *cobra.Command, args []string) error {
	_, engine, notifier, setupErr := setup()
	if setupErr != nil {
		return setupErr
	}

	job := BackupJob{
		SourceFolder:      expandPath(args[0]),
		DestinationBucket: bucketName,
	}

	if backupAt != "" {
		scheduler := gocron.NewScheduler(time.Local)
		_, scheduleErr := scheduler.Every(1).Day().At(backupAt).Do(func() {
			if backupErr := doBackup(engine.client, job, notifier); backupErr != nil {
				log.Error(fmt.Sprintf("Scheduled backup failed: %s", backupErr))
			}
		})
		if scheduleErr != nil {
			return scheduleErr
		}
		scheduler.StartBlocking()
		return nil
	}

	return doBackup(engine.client, job, notifier)
}

func setup() (AppConfig, *SyncEngine, Notifier, error) {
	if debugLogging {
		log.SetLevel(log.DebugLevel)
	}

	appConfig, configErr := LoadAppConfig(configFilePath)
	if configErr != nil {
		return appConfig, nil, nil, fmt.Errorf("Error loading config: %w", configErr)
	}
	if poolSize > 0 {
		appConfig.Concurrency = poolSize
	}
	for _, line := range appConfig.ConfigStringArray() {
		log.Debug(line)
	}

	client, clientErr := appConfig.ClientFromConfig()
	if clientErr != nil {
		return appConfig, nil, nil, clientErr
	}

	var notifier Notifier
	if appConfig.Notify.Topic != "" {
		var notifierErr error
		notifier, notifierErr = NewSNSNotifier(appConfig)
		if notifierErr != nil {
			return appConfig, nil, nil, fmt.Errorf("Error creating SNS notifier: %w", notifierErr)
		}
	}

	return appConfig, NewSyncEngine(client, appConfig, notifier), notifier, nil
}
