package stdlib

// classes lists platform classes per package, nested classes use a dotted name
var classes = map[string][]string{
	"java.lang": {
		"AbstractMethodError", "Appendable", "ArithmeticException", "ArrayIndexOutOfBoundsException",
		"ArrayStoreException", "AssertionError", "AutoCloseable", "Boolean", "Byte", "CharSequence",
		"Character", "Class", "ClassCastException", "ClassLoader", "ClassNotFoundException",
		"CloneNotSupportedException", "Cloneable", "Comparable", "Deprecated", "Double", "Enum",
		"Error", "Exception", "Float", "FunctionalInterface", "IllegalAccessException",
		"IllegalArgumentException", "IllegalMonitorStateException", "IllegalStateException",
		"IndexOutOfBoundsException", "InheritableThreadLocal", "InstantiationException", "Integer",
		"InterruptedException", "Iterable", "LinkageError", "Long", "Math", "NegativeArraySizeException",
		"NoClassDefFoundError", "NoSuchFieldException", "NoSuchMethodException", "NullPointerException",
		"Number", "NumberFormatException", "Object", "OutOfMemoryError", "Override", "Package", "Process",
		"ProcessBuilder", "ProcessBuilder.Redirect", "Readable", "Record", "ReflectiveOperationException", "Runnable",
		"Runtime", "RuntimeException", "SafeVarargs", "SecurityException", "Short", "StackOverflowError",
		"StackTraceElement", "StrictMath", "String", "StringBuffer", "StringBuilder",
		"StringIndexOutOfBoundsException", "SuppressWarnings", "System", "Thread", "Thread.State",
		"Thread.UncaughtExceptionHandler", "ThreadGroup", "ThreadLocal", "Throwable", "TypeNotPresentException",
		"UnsupportedOperationException", "VirtualMachineError", "Void",
	},
	"java.lang.annotation": {
		"Annotation", "Documented", "ElementType", "Inherited", "Native", "Repeatable", "Retention",
		"RetentionPolicy", "Target",
	},
	"java.lang.reflect": {
		"AccessibleObject", "Array", "Constructor", "Executable", "Field", "GenericArrayType",
		"InvocationHandler", "InvocationTargetException", "Member", "Method", "Modifier", "Parameter",
		"ParameterizedType", "Proxy", "Type", "TypeVariable", "WildcardType",
	},
	"java.lang.ref": {"PhantomReference", "Reference", "ReferenceQueue", "SoftReference", "WeakReference"},
	"java.util": {
		"AbstractCollection", "AbstractList", "AbstractMap", "AbstractMap.SimpleEntry",
		"AbstractMap.SimpleImmutableEntry", "AbstractQueue", "AbstractSet", "ArrayDeque", "ArrayList", "Arrays",
		"Base64", "BitSet", "Calendar", "Collection", "Collections", "Comparator",
		"ConcurrentModificationException", "Currency", "Date", "Deque", "Dictionary", "EnumMap", "EnumSet",
		"Enumeration", "EventListener", "EventObject", "Formatter", "HashMap", "HashSet", "Hashtable",
		"IdentityHashMap", "Iterator", "LinkedHashMap", "LinkedHashSet", "LinkedList", "List", "ListIterator",
		"Locale", "Map", "Map.Entry", "MissingResourceException", "NavigableMap", "NavigableSet",
		"NoSuchElementException", "Objects", "Observable", "Observer", "Optional", "OptionalDouble",
		"OptionalInt", "OptionalLong", "PriorityQueue", "Properties", "Queue", "Random", "RandomAccess",
		"ResourceBundle", "Scanner", "Set", "SortedMap", "SortedSet", "Spliterator", "Spliterators",
		"SplittableRandom", "Stack", "StringJoiner", "StringTokenizer", "Timer", "TimerTask", "TimeZone",
		"TreeMap", "TreeSet", "UUID", "Vector", "WeakHashMap",
	},
	"java.util.function": {
		"BiConsumer", "BiFunction", "BiPredicate", "BinaryOperator", "BooleanSupplier", "Consumer",
		"DoubleFunction", "DoubleSupplier", "DoubleUnaryOperator", "Function", "IntBinaryOperator",
		"IntConsumer", "IntFunction", "IntPredicate", "IntSupplier", "IntUnaryOperator", "LongFunction",
		"LongSupplier", "Predicate", "Supplier", "ToDoubleFunction", "ToIntFunction", "ToLongFunction",
		"UnaryOperator",
	},
	"java.util.stream": {
		"Collector", "Collectors", "DoubleStream", "IntStream", "LongStream", "Stream", "Stream.Builder",
		"StreamSupport",
	},
	"java.util.concurrent": {
		"ArrayBlockingQueue", "BlockingDeque", "BlockingQueue", "Callable", "CancellationException",
		"CompletableFuture", "CompletionException", "CompletionService", "CompletionStage",
		"ConcurrentHashMap", "ConcurrentLinkedDeque", "ConcurrentLinkedQueue", "ConcurrentMap",
		"ConcurrentSkipListMap", "ConcurrentSkipListSet", "CopyOnWriteArrayList", "CopyOnWriteArraySet",
		"CountDownLatch", "CyclicBarrier", "DelayQueue", "Delayed", "ExecutionException", "Executor",
		"ExecutorCompletionService", "ExecutorService", "Executors", "ForkJoinPool", "ForkJoinTask", "Future",
		"FutureTask", "LinkedBlockingDeque", "LinkedBlockingQueue", "Phaser", "PriorityBlockingQueue",
		"RecursiveAction", "RecursiveTask", "RejectedExecutionException", "ScheduledExecutorService",
		"ScheduledFuture", "ScheduledThreadPoolExecutor", "Semaphore", "SynchronousQueue", "ThreadFactory",
		"ThreadLocalRandom", "ThreadPoolExecutor", "TimeUnit", "TimeoutException",
	},
	"java.util.concurrent.atomic": {
		"AtomicBoolean", "AtomicInteger", "AtomicIntegerArray", "AtomicLong", "AtomicLongArray",
		"AtomicReference", "AtomicReferenceArray", "DoubleAdder", "LongAdder",
	},
	"java.util.concurrent.locks": {
		"Condition", "Lock", "LockSupport", "ReadWriteLock", "ReentrantLock", "ReentrantReadWriteLock",
		"StampedLock",
	},
	"java.util.regex":   {"MatchResult", "Matcher", "Pattern", "PatternSyntaxException"},
	"java.util.logging": {"ConsoleHandler", "FileHandler", "Handler", "Level", "LogManager", "LogRecord", "Logger"},
	"java.util.zip": {
		"CRC32", "Deflater", "GZIPInputStream", "GZIPOutputStream", "Inflater", "ZipEntry", "ZipException",
		"ZipFile", "ZipInputStream", "ZipOutputStream",
	},
	"java.util.jar": {"Attributes", "JarEntry", "JarFile", "JarInputStream", "JarOutputStream", "Manifest"},
	"java.io": {
		"BufferedInputStream", "BufferedOutputStream", "BufferedReader", "BufferedWriter",
		"ByteArrayInputStream", "ByteArrayOutputStream", "CharArrayReader", "CharArrayWriter", "Closeable",
		"DataInput", "DataInputStream", "DataOutput", "DataOutputStream", "EOFException", "Externalizable",
		"File", "FileDescriptor", "FileFilter", "FileInputStream", "FileNotFoundException", "FileOutputStream",
		"FileReader", "FileWriter", "FilenameFilter", "FilterInputStream", "FilterOutputStream", "Flushable",
		"IOException", "InputStream", "InputStreamReader", "InterruptedIOException", "ObjectInputStream",
		"ObjectOutputStream", "OutputStream", "OutputStreamWriter", "PrintStream", "PrintWriter",
		"PushbackInputStream", "RandomAccessFile", "Reader", "Serializable", "StringReader", "StringWriter",
		"UncheckedIOException", "UnsupportedEncodingException", "Writer",
	},
	"java.nio":          {"Buffer", "ByteBuffer", "ByteOrder", "CharBuffer", "IntBuffer", "LongBuffer"},
	"java.nio.charset":  {"Charset", "StandardCharsets"},
	"java.nio.channels": {"Channel", "Channels", "FileChannel", "ReadableByteChannel", "SocketChannel", "WritableByteChannel"},
	"java.nio.file": {
		"AccessDeniedException", "CopyOption", "DirectoryStream", "FileAlreadyExistsException", "FileSystem",
		"FileSystems", "FileVisitResult", "FileVisitor", "Files", "InvalidPathException", "LinkOption",
		"NoSuchFileException", "OpenOption", "Path", "PathMatcher", "Paths", "SimpleFileVisitor",
		"StandardCopyOption", "StandardOpenOption", "WatchEvent", "WatchKey", "WatchService",
	},
	"java.nio.file.attribute": {"BasicFileAttributes", "FileAttribute", "FileTime", "PosixFilePermission", "PosixFilePermissions"},
	"java.math":               {"BigDecimal", "BigInteger", "MathContext", "RoundingMode"},
	"java.net": {
		"ConnectException", "DatagramPacket", "DatagramSocket", "HttpURLConnection", "Inet4Address",
		"Inet6Address", "InetAddress", "InetSocketAddress", "MalformedURLException", "ServerSocket", "Socket",
		"SocketAddress", "SocketException", "SocketTimeoutException", "URI", "URISyntaxException", "URL",
		"URLConnection", "URLDecoder", "URLEncoder", "UnknownHostException",
	},
	"java.net.http": {"HttpClient", "HttpRequest", "HttpResponse"},
	"java.sql": {
		"Array", "Blob", "CallableStatement", "Clob", "Connection", "DatabaseMetaData", "Date", "Driver",
		"DriverManager", "PreparedStatement", "ResultSet", "ResultSetMetaData", "SQLException",
		"SQLWarning", "Statement", "Time", "Timestamp", "Types",
	},
	"java.text": {
		"DateFormat", "DecimalFormat", "Format", "MessageFormat", "Normalizer", "NumberFormat",
		"ParseException", "SimpleDateFormat",
	},
	"java.time": {
		"Clock", "DateTimeException", "DayOfWeek", "Duration", "Instant", "LocalDate", "LocalDateTime",
		"LocalTime", "Month", "MonthDay", "OffsetDateTime", "OffsetTime", "Period", "Year", "YearMonth",
		"ZoneId", "ZoneOffset", "ZonedDateTime",
	},
	"java.time.format":   {"DateTimeFormatter", "DateTimeFormatterBuilder", "DateTimeParseException", "FormatStyle"},
	"java.time.temporal": {"ChronoField", "ChronoUnit", "Temporal", "TemporalAdjusters", "TemporalUnit"},
	"java.security": {
		"GeneralSecurityException", "Key", "KeyFactory", "KeyPair", "KeyPairGenerator", "KeyStore",
		"KeyStore.Entry", "MessageDigest", "NoSuchAlgorithmException", "Principal", "PrivateKey", "PublicKey",
		"SecureRandom", "Signature",
	},
	"java.awt":         {"Color", "Component", "Dimension", "Font", "Graphics", "Image", "List", "Point", "Rectangle"},
	"javax.annotation": {"Generated", "Nonnull", "Nullable", "PostConstruct", "PreDestroy", "Resource"},
}
