// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

// Diagonal represents a diagonal going in the a1-h8 direction. The
// diagonals are numbered from h1-h1 (0) to a8-a8 (14).
type Diagonal int8

// DiagonalN is the number of diagonals.
const DiagonalN = 15

// AntiDiagonal represents a diagonal going in the a8-h1 direction. The
// anti-diagonals are numbered from a1-a1 (0) to h8-h8 (14).
type AntiDiagonal int8

// AntiDiagonalN is the number of anti-diagonals.
const AntiDiagonalN = 15
