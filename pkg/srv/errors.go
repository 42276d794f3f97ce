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
	"fmt"
)

// ErrJobNotFound returned when there is no job with the given id in the state
type ErrJobNotFound struct {
	ID string
}

func (e ErrJobNotFound) Error() string {
	return fmt.Sprintf("Job not found: %s", e.ID)
}

// ErrBadRequest returned when request parameters can not be turned into frames
type ErrBadRequest struct {
	What string
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("Bad request: %s", e.What)
}
