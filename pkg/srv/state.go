/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package srv

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"jinr.ru/greenlab/go-esl/pkg/log"
)

const (
	JobsBucket = "jobs"
)

type JobState struct {
	DB *bbolt.DB
}

func NewJobState(path string) (*JobState, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	// open job database
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(JobsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &JobState{
		DB: db,
	}, nil
}

// Close ...
func (s *JobState) Close() error {
	return s.DB.Close()
}

// PutJob ...
func (s *JobState) PutJob(job *Job) error {
	log.Debug("Storing job: id: %s plid: %s", job.ID, job.PLID)
	jobBytes, err := yaml.Marshal(job)
	if err != nil {
		return err
	}
	return s.DB.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(JobsBucket)).Put([]byte(job.ID), jobBytes)
	})
}

// GetJob ...
func (s *JobState) GetJob(id string) (*Job, error) {
	log.Debug("Getting job: id: %s", id)
	job := &Job{}
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		jobBytes := tx.Bucket([]byte(JobsBucket)).Get([]byte(id))
		if jobBytes == nil {
			return ErrJobNotFound{ID: id}
		}
		return yaml.Unmarshal(jobBytes, job)
	}); err != nil {
		return nil, err
	}
	return job, nil
}

// GetAllJobs returns jobs ordered by creation time
func (s *JobState) GetAllJobs() ([]*Job, error) {
	log.Debug("Getting all jobs")
	jobs := []*Job{}
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(JobsBucket)).ForEach(func(_, jobBytes []byte) error {
			job := &Job{}
			if err := yaml.Unmarshal(jobBytes, job); err != nil {
				log.Error("Error while unmarshalling job: %s", err)
				return err
			}
			jobs = append(jobs, job)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Created.Before(jobs[j].Created)
	})
	return jobs, nil
}

// DeleteJob ...
func (s *JobState) DeleteJob(id string) error {
	log.Debug("Deleting job: id: %s", id)
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(JobsBucket))
		if b.Get([]byte(id)) == nil {
			return ErrJobNotFound{ID: id}
		}
		return b.Delete([]byte(id))
	})
}
