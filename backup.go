package main

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

type BackupJob struct {
	SourceFolder      string
	DestinationBucket string
}

// doBackup tars the whole source tree into a timestamped tar.gz and uploads
// it as a single object. Skip-duplicate logic does not apply here since every
// archive name is unique.
func doBackup(client BucketClient, job BackupJob, notifier Notifier) error {
	filesToCompress, walkErr := concreteWalkFunc(job.SourceFolder)
	if walkErr != nil {
		return fmt.Errorf("Backup directory walk failed: %w", walkErr)
	}

	now := time.Now()
	backupTimestamp := now.Format(time.RFC3339)
	backupPrefix := fmt.Sprintf("%s_%s_*.tar.gz", filepath.Base(job.SourceFolder), backupTimestamp)
	tarFile, tmpErr := ioutil.TempFile(os.TempDir(), backupPrefix)
	if tmpErr != nil {
		return fmt.Errorf("Error creating backup tempfile: %w", tmpErr)
	}
	defer os.Remove(tarFile.Name())

	log.Info(fmt.Sprintf("Creating backup tarball: %s", tarFile.Name()))
	if archiveErr := createArchive(filesToCompress, tarFile); archiveErr != nil {
		return fmt.Errorf("Error creating backup archive: %w", archiveErr)
	}
	tarFile.Close()

	// the archive writers above own the original descriptor, so the upload
	// needs its own
	uploadFile, uploadFileOpenErr := os.Open(tarFile.Name())
	if uploadFileOpenErr != nil {
		return fmt.Errorf("Error opening backup for upload: %w", uploadFileOpenErr)
	}
	defer uploadFile.Close()

	fileKey := filepath.Base(tarFile.Name())
	putErr := client.UploadFile(job.DestinationBucket, fileKey, uploadFile)
	if putErr != nil {
		log.Warn("Backup upload error: ", putErr)
	} else {
		log.Info("Upload succeded for ", fileKey)
	}

	if notifier != nil {
		notifier.NotifyBackupResults(job, uploadFile, putErr)
	}

	return putErr
}

func createArchive(files []string, buf io.Writer) error {
	gw := gzip.NewWriter(buf)
	defer gw.Close()
	tw := tar.NewWriter(gw)
	defer tw.Close()

	for _, file := range files {
		err := addToArchive(tw, file)
		if err != nil {
			return err
		}
	}

	return nil
}

func addToArchive(tw *tar.Writer, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(info, info.Name())
	if err != nil {
		return err
	}

	header.Name = filename

	err = tw.WriteHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(tw, file)
	if err != nil {
		return err
	}

	return nil
}
