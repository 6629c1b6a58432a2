package main

import (
	"os"
)

type Notifier interface {
	NotifyTransferResults(SyncJob, *ResultMap) error
	NotifyBackupResults(backupJob BackupJob, backupFile *os.File, backupErr error) error
}
